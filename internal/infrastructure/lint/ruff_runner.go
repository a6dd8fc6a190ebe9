package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

var _ ports.LintRunner = (*RuffRunner)(nil)

const ruffTimeout = 60 * time.Second

// Estos textos viajan dentro del prompt, por eso quedan fijos en inglés
// y no pasan por i18n.
const (
	msgLintSkipped   = "No Python files changed — linting skipped."
	msgFormatSkipped = "No Python files changed — format check skipped."
	msgAllPassed     = "All checks passed ✓"
	msgTimedOut      = "ruff timed out after 60 s."
)

// RuffRunner invoca ruff sobre los archivos del commit. La salida combinada
// de stdout/stderr se trata como texto opaco para el prompt.
type RuffRunner struct {
	bin      string
	repoPath string
}

func NewRuffRunner(bin, repoPath string) *RuffRunner {
	return &RuffRunner{bin: bin, repoPath: repoPath}
}

func (r *RuffRunner) Check(ctx context.Context, files []string) string {
	targets := r.filterPythonFiles(files)
	if len(targets) == 0 {
		return msgLintSkipped
	}
	return r.invoke(ctx, append([]string{"check", "--output-format=concise"}, targets...))
}

func (r *RuffRunner) FormatCheck(ctx context.Context, files []string) string {
	targets := r.filterPythonFiles(files)
	if len(targets) == 0 {
		return msgFormatSkipped
	}
	return r.invoke(ctx, append([]string{"format", "--check", "--diff"}, targets...))
}

// filterPythonFiles se queda solo con los *.py que siguen existiendo
// (un commit puede borrar archivos).
func (r *RuffRunner) filterPythonFiles(files []string) []string {
	targets := make([]string, 0, len(files))
	for _, file := range files {
		if !strings.HasSuffix(file, ".py") {
			continue
		}
		if _, err := os.Stat(filepath.Join(r.repoPath, file)); err != nil {
			continue
		}
		targets = append(targets, file)
	}
	return targets
}

func (r *RuffRunner) invoke(ctx context.Context, args []string) string {
	ctx, cancel := context.WithTimeout(ctx, ruffTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.repoPath

	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return msgTimedOut
	}

	// ruff sale con código distinto de cero cuando encuentra problemas:
	// eso no es un fallo, la salida es el resultado.
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Sprintf("ruff not found at %s. Install it or set RUFF_BIN.", r.bin)
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return msgAllPassed
	}
	return result
}
