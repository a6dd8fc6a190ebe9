package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.Reviewer = (*GeminiReviewer)(nil)

type GeminiReviewer struct {
	client    *genai.Client
	modelName string
	trans     *i18n.Translations
}

func NewGeminiReviewer(ctx context.Context, apiKey, modelName string, trans *i18n.Translations) (*GeminiReviewer, error) {
	if apiKey == "" {
		msg := trans.GetMessage("error_missing_gemini_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		msg := trans.GetMessage("error_gemini_client", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &GeminiReviewer{
		client:    client,
		modelName: modelName,
		trans:     trans,
	}, nil
}

func (s *GeminiReviewer) Name() string { return string(config.ProviderGemini) }

func (s *GeminiReviewer) GenerateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	model := s.client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemPrompt)},
	}
	if req.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxOutputTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return models.Review{}, fmt.Errorf("error al generar la review con gemini: %w", err)
	}

	return models.Review{
		Content:    formatResponse(resp),
		TokensUsed: totalTokens(resp),
	}, nil
}

// formatResponse aplana los candidates de Gemini en una sola cadena.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}

func totalTokens(resp *genai.GenerateContentResponse) int {
	if resp == nil || resp.UsageMetadata == nil {
		return 0
	}
	return int(resp.UsageMetadata.TotalTokenCount)
}
