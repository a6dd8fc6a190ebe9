package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// GeminiFactory crea reviewers contra la API de Gemini
type GeminiFactory struct{}

func NewGeminiFactory() *GeminiFactory {
	return &GeminiFactory{}
}

func (f *GeminiFactory) Name() string { return string(config.ProviderGemini) }

func (f *GeminiFactory) CreateReviewer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error) {
	return NewGeminiReviewer(ctx, cfg.GeminiAPIKey, string(cfg.Model), trans)
}
