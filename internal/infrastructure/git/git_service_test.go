package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	runGit(t, tempDir, "init")
	runGit(t, tempDir, "config", "user.email", "test@example.com")
	runGit(t, tempDir, "config", "user.name", "Test User")

	return tempDir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Error ejecutando git %v: %v\n%s", args, err, output)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Error escribiendo archivo %s: %v", name, err)
	}
}

func TestGetLatestCommit_FirstCommit(t *testing.T) {
	repo := setupTestRepo(t)
	writeFile(t, repo, "app.py", "print('hola')\n")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-m", "primer commit")

	service := NewGitService(repo)
	info, err := service.GetLatestCommit(context.Background())
	if err != nil {
		t.Fatalf("GetLatestCommit falló: %v", err)
	}

	if len(info.SHA) != 40 {
		t.Errorf("SHA inesperado: %q", info.SHA)
	}
	if info.Message != "primer commit" {
		t.Errorf("Mensaje inesperado: %q", info.Message)
	}
	// No hay HEAD~1: el diff tiene que venir del fallback (show --stat)
	if info.Diff == "" {
		t.Error("El diff del primer commit no debería estar vacío")
	}
	if !strings.Contains(info.Diff, "app.py") {
		t.Errorf("El diff de fallback debería mencionar app.py, fue: %q", info.Diff)
	}
}

func TestGetLatestCommit_SecondCommit(t *testing.T) {
	repo := setupTestRepo(t)
	writeFile(t, repo, "app.py", "print('hola')\n")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-m", "primer commit")

	writeFile(t, repo, "app.py", "print('hola')\nprint('chau')\n")
	writeFile(t, repo, "util.py", "x = 1\n")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-m", "segundo commit")

	service := NewGitService(repo)
	info, err := service.GetLatestCommit(context.Background())
	if err != nil {
		t.Fatalf("GetLatestCommit falló: %v", err)
	}

	if info.Message != "segundo commit" {
		t.Errorf("Mensaje inesperado: %q", info.Message)
	}
	if !strings.Contains(info.Diff, "print('chau')") {
		t.Errorf("El diff debería incluir la línea agregada, fue: %q", info.Diff)
	}
	if len(info.ChangedFiles) != 2 {
		t.Fatalf("Se esperaban 2 archivos modificados, hubo %d: %v", len(info.ChangedFiles), info.ChangedFiles)
	}
	if info.ChangedFiles[0] != "app.py" || info.ChangedFiles[1] != "util.py" {
		t.Errorf("Archivos modificados inesperados: %v", info.ChangedFiles)
	}
}

func TestGetLatestCommit_NotARepo(t *testing.T) {
	service := NewGitService(t.TempDir())
	if _, err := service.GetLatestCommit(context.Background()); err == nil {
		t.Error("Se esperaba un error fuera de un repo git")
	}
}

func TestGetRepoInfo(t *testing.T) {
	repo := setupTestRepo(t)
	writeFile(t, repo, "app.py", "print('hola')\n")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-m", "primer commit")
	runGit(t, repo, "remote", "add", "origin", "git@github.com:mate/review.git")

	service := NewGitService(repo)
	owner, name, provider, err := service.GetRepoInfo(context.Background())
	if err != nil {
		t.Fatalf("GetRepoInfo falló: %v", err)
	}
	if owner != "mate" || name != "review" || provider != "github" {
		t.Errorf("Resultado inesperado: %s/%s (%s)", owner, name, provider)
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		owner    string
		repo     string
		provider string
		wantErr  bool
	}{
		{
			name:     "ssh github",
			url:      "git@github.com:owner/project.git",
			owner:    "owner",
			repo:     "project",
			provider: "github",
		},
		{
			name:     "https github",
			url:      "https://github.com/owner/project.git",
			owner:    "owner",
			repo:     "project",
			provider: "github",
		},
		{
			name:     "https sin .git",
			url:      "https://gitlab.com/owner/project",
			owner:    "owner",
			repo:     "project",
			provider: "gitlab",
		},
		{
			name:    "url invalida",
			url:     "ftp://example.com/algo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, provider, err := parseRepoURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Se esperaba un error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Error inesperado: %v", err)
			}
			if owner != tt.owner || repo != tt.repo || provider != tt.provider {
				t.Errorf("Resultado inesperado: %s/%s (%s)", owner, repo, provider)
			}
		})
	}
}
