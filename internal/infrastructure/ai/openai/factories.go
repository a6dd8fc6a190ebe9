package openai

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

const defaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIFactory crea reviewers contra la API pública de OpenAI
type OpenAIFactory struct{}

func NewOpenAIFactory() *OpenAIFactory {
	return &OpenAIFactory{}
}

func (f *OpenAIFactory) Name() string { return string(config.ProviderOpenAI) }

func (f *OpenAIFactory) CreateReviewer(_ context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error) {
	if cfg.OpenAIAPIKey == "" || strings.HasPrefix(cfg.OpenAIAPIKey, "sk-...") {
		msg := trans.GetMessage("error_missing_openai_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + cfg.OpenAIAPIKey,
	}
	return NewChatClient(f.Name(), defaultOpenAIEndpoint, string(cfg.Model), headers, nil), nil
}

// AzureFactory crea reviewers contra Azure AI Foundry / Azure OpenAI
type AzureFactory struct{}

func NewAzureFactory() *AzureFactory {
	return &AzureFactory{}
}

func (f *AzureFactory) Name() string { return string(config.ProviderAzure) }

func (f *AzureFactory) CreateReviewer(_ context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error) {
	if cfg.AzureConfig.Endpoint == "" || cfg.AzureConfig.APIKey == "" {
		msg := trans.GetMessage("error_missing_azure_config", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	endpoint := strings.TrimSuffix(cfg.AzureConfig.Endpoint, "/") + "/openai/v1/chat/completions"
	headers := map[string]string{
		"api-key": cfg.AzureConfig.APIKey,
	}
	query := url.Values{}
	query.Set("api-version", cfg.AzureConfig.APIVersion)

	return NewChatClient(f.Name(), endpoint, string(cfg.Model), headers, query), nil
}

// GitHubFactory crea reviewers contra GitHub Models (endpoint OpenAI-compatible)
type GitHubFactory struct{}

func NewGitHubFactory() *GitHubFactory {
	return &GitHubFactory{}
}

func (f *GitHubFactory) Name() string { return string(config.ProviderGitHub) }

func (f *GitHubFactory) CreateReviewer(_ context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error) {
	if cfg.GitHubToken == "" {
		msg := trans.GetMessage("error_missing_github_token", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	endpoint := strings.TrimSuffix(cfg.GitHubModelsBaseURL, "/") + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.GitHubToken,
	}
	return NewChatClient(f.Name(), endpoint, string(cfg.Model), headers, nil), nil
}
