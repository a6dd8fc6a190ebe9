package hook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

const (
	// HookName es el hook de git que dispara la review
	HookName = "post-commit"

	// Marker identifica los hooks instalados por matereview. Un hook sin el
	// marker nunca se toca al desinstalar.
	Marker = "# MATEREVIEW_HOOK"
)

// Installer instala y elimina el hook post-commit en los repos indicados.
type Installer struct {
	execPath string
	trans    *i18n.Translations
	out      io.Writer
}

func NewInstaller(execPath string, trans *i18n.Translations, out io.Writer) *Installer {
	return &Installer{
		execPath: execPath,
		trans:    trans,
		out:      out,
	}
}

// renderHook arma el bloque de script que corre la review después de cada
// commit. El `|| true` evita que una review fallida rompa el commit.
func (i *Installer) renderHook() string {
	var b strings.Builder
	b.WriteString(Marker + "\n")
	b.WriteString(fmt.Sprintf("%s review \"$(git rev-parse --show-toplevel)\" || true\n", i.execPath))
	return b.String()
}

// Install agrega el hook al repo. Es idempotente: un hook con el marker no se
// vuelve a instalar, y un hook ajeno se conserva agregando el bloque al final.
func (i *Installer) Install(repo string) error {
	hooksDir := filepath.Join(repo, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("error al crear el directorio de hooks en '%s': %w", repo, err)
	}

	hookPath := filepath.Join(hooksDir, HookName)

	existing, err := os.ReadFile(hookPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error al leer el hook existente en '%s': %w", repo, err)
	}

	if err == nil {
		if strings.Contains(string(existing), Marker) {
			i.printMessage("hook_already_installed", repo)
			return nil
		}

		// No pisamos un hook ajeno: agregamos nuestro bloque al final
		i.printMessage("hook_appended", repo)
		content := string(existing) + "\n" + i.renderHook()
		if err := os.WriteFile(hookPath, []byte(content), 0755); err != nil {
			return fmt.Errorf("error al extender el hook en '%s': %w", repo, err)
		}
		return os.Chmod(hookPath, 0755)
	}

	i.printMessage("hook_installed", repo)
	content := "#!/usr/bin/env bash\n" + i.renderHook()
	if err := os.WriteFile(hookPath, []byte(content), 0755); err != nil {
		return fmt.Errorf("error al escribir el hook en '%s': %w", repo, err)
	}
	return nil
}

// Uninstall elimina el hook solo si lo instaló matereview.
func (i *Installer) Uninstall(repo string) error {
	hookPath := filepath.Join(repo, ".git", "hooks", HookName)

	content, err := os.ReadFile(hookPath)
	if os.IsNotExist(err) {
		i.printMessage("hook_not_present", repo)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error al leer el hook en '%s': %w", repo, err)
	}

	if !strings.Contains(string(content), Marker) {
		i.printMessage("hook_not_ours", repo)
		return nil
	}

	if err := os.Remove(hookPath); err != nil {
		return fmt.Errorf("error al eliminar el hook en '%s': %w", repo, err)
	}
	i.printMessage("hook_removed", repo)
	return nil
}

func (i *Installer) printMessage(messageID, repo string) {
	msg := i.trans.GetMessage(messageID, 0, map[string]interface{}{
		"Repo": repo,
	})
	_, _ = fmt.Fprintln(i.out, msg)
}

// IsGitRepo verifica que el path tenga un directorio .git.
func IsGitRepo(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// FindRepos descubre repos git un nivel por debajo de scanDir, ordenados.
func FindRepos(scanDir string) ([]string, error) {
	entries, err := os.ReadDir(scanDir)
	if err != nil {
		return nil, fmt.Errorf("error al escanear '%s': %w", scanDir, err)
	}

	repos := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(scanDir, entry.Name())
		if IsGitRepo(child) {
			repos = append(repos, child)
		}
	}
	sort.Strings(repos)
	return repos, nil
}
