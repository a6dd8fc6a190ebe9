package ports

import "context"

// LintRunner ejecuta el linter sobre los archivos tocados por el commit.
// La salida siempre es texto: los fallos del binario se degradan a mensajes
// descriptivos en lugar de abortar la review.
type LintRunner interface {
	Check(ctx context.Context, files []string) string
	FormatCheck(ctx context.Context, files []string) string
}
