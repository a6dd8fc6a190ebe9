package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

type GitService interface {
	// GetLatestCommit recolecta SHA, mensaje, diff y archivos modificados del HEAD
	GetLatestCommit(ctx context.Context) (models.CommitInfo, error)
	// GetRepoInfo retorna owner, repo y proveedor detectado desde el remote origin
	GetRepoInfo(ctx context.Context) (string, string, string, error)
}
