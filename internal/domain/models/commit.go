package models

type (
	// CommitInfo describe el último commit del repositorio. Se construye una
	// vez por ejecución a partir del estado real del repo y es de solo lectura.
	CommitInfo struct {
		SHA          string
		Message      string
		Diff         string
		ChangedFiles []string
	}

	// LintReport agrupa la salida de ruff para el commit revisado.
	LintReport struct {
		Check       string
		FormatCheck string
	}
)

// ShortSHA retorna los primeros 10 caracteres del SHA para mostrarlo en la review.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) <= 10 {
		return c.SHA
	}
	return c.SHA[:10]
}
