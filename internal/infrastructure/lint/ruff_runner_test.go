package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepoWithFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte("x = 1\n"), 0644)
		require.NoError(t, err)
	}
	return dir
}

func TestCheck_NoPythonFiles(t *testing.T) {
	t.Run("should skip when no files changed", func(t *testing.T) {
		runner := NewRuffRunner("ruff", t.TempDir())

		result := runner.Check(context.Background(), nil)

		assert.Equal(t, "No Python files changed — linting skipped.", result)
	})

	t.Run("should skip when only non-python files changed", func(t *testing.T) {
		repo := setupRepoWithFiles(t, "main.go", "README.md")
		runner := NewRuffRunner("ruff", repo)

		result := runner.Check(context.Background(), []string{"main.go", "README.md"})

		assert.Equal(t, "No Python files changed — linting skipped.", result)
	})

	t.Run("should skip python files deleted by the commit", func(t *testing.T) {
		runner := NewRuffRunner("ruff", t.TempDir())

		result := runner.FormatCheck(context.Background(), []string{"deleted.py"})

		assert.Equal(t, "No Python files changed — format check skipped.", result)
	})
}

func TestInvoke_MissingBinary(t *testing.T) {
	t.Run("should degrade to a descriptive message", func(t *testing.T) {
		repo := setupRepoWithFiles(t, "app.py")
		runner := NewRuffRunner("/nonexistent/path/to/ruff", repo)

		result := runner.Check(context.Background(), []string{"app.py"})

		assert.Contains(t, result, "ruff not found at /nonexistent/path/to/ruff")
	})

	t.Run("format check degrades the same way", func(t *testing.T) {
		repo := setupRepoWithFiles(t, "app.py")
		runner := NewRuffRunner("/nonexistent/path/to/ruff", repo)

		result := runner.FormatCheck(context.Background(), []string{"app.py"})

		assert.Contains(t, result, "ruff not found at")
	})
}

func TestFilterPythonFiles(t *testing.T) {
	repo := setupRepoWithFiles(t, "a.py", "b.py", "c.go")
	runner := NewRuffRunner("ruff", repo)

	targets := runner.filterPythonFiles([]string{"a.py", "b.py", "c.go", "missing.py"})

	assert.Equal(t, []string{"a.py", "b.py"}, targets)
}
