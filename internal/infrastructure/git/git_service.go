package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

// commandTimeout limita cada invocación de git
const commandTimeout = 30 * time.Second

type GitService struct {
	repoPath string
}

func NewGitService(repoPath string) *GitService {
	return &GitService{repoPath: repoPath}
}

// run ejecuta un subcomando de git dentro del repo. El contrato es solo el
// stdout textual: un comando que falla retorna cadena vacía.
func (s *GitService) run(ctx context.Context, args ...string) string {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.repoPath

	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// GetLatestCommit junta SHA, mensaje, diff y archivos modificados del HEAD.
func (s *GitService) GetLatestCommit(ctx context.Context) (models.CommitInfo, error) {
	sha := s.run(ctx, "rev-parse", "HEAD")
	if sha == "" {
		return models.CommitInfo{}, fmt.Errorf("no se pudo resolver el HEAD en '%s': ¿es un repositorio git con commits?", s.repoPath)
	}

	message := s.run(ctx, "log", "-1", "--pretty=%B")
	diff := s.run(ctx, "diff", "HEAD~1", "HEAD")

	changedFilesRaw := s.run(ctx, "diff", "--name-only", "HEAD~1", "HEAD")
	changedFiles := make([]string, 0)
	for _, file := range strings.Split(changedFilesRaw, "\n") {
		if file = strings.TrimSpace(file); file != "" {
			changedFiles = append(changedFiles, file)
		}
	}

	// Fallback para el primer commit del repo (no existe HEAD~1)
	if diff == "" {
		diff = s.run(ctx, "diff", "--cached", "HEAD")
	}
	if diff == "" {
		diff = s.run(ctx, "show", "--stat", "HEAD")
	}

	return models.CommitInfo{
		SHA:          sha,
		Message:      message,
		Diff:         diff,
		ChangedFiles: changedFiles,
	}, nil
}

// GetRepoInfo extrae owner, repo y proveedor desde la URL del remote origin.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	url := s.run(ctx, "remote", "get-url", "origin")
	if url == "" {
		return "", "", "", fmt.Errorf("no se pudo obtener la URL del remote origin")
	}
	return parseRepoURL(url)
}

func parseRepoURL(url string) (string, string, string, error) {
	sshRegex := regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex := regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		provider := detectProvider(matches[1])
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, provider, nil
	}

	return "", "", "", fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
