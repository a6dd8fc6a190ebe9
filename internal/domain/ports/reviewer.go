package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

type Reviewer interface {
	// GenerateReview hace una única llamada bloqueante de chat-completion
	GenerateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error)
	// Name retorna el nombre del proveedor (ej: "azure", "github", "openai", "gemini")
	Name() string
}
