package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  t.GetMessage("config_show_usage", 0, nil),
				Action: f.createShowAction(config, t),
			},
		},
	}
}

func (f *ConfigCommandFactory) createShowAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		fmt.Printf("%s:\n", t.GetMessage("current_config", 0, nil))
		fmt.Printf("  LLM_PROVIDER:           %s\n", config.Provider)
		fmt.Printf("  REVIEWER_MODEL:         %s\n", config.Model)
		fmt.Printf("  MAX_TOKENS:             %d\n", config.MaxTokens)
		fmt.Printf("  RUFF_BIN:               %s\n", config.RuffBin)
		fmt.Printf("  MATEREVIEW_LANG:        %s\n", config.Language)
		fmt.Printf("  MATEREVIEW_PUBLISH:     %t\n", config.PublishReview)
		fmt.Println()
		fmt.Printf("  OPENAI_API_KEY:         %s\n", cfg.MaskSecret(config.OpenAIAPIKey))
		fmt.Printf("  GITHUB_TOKEN:           %s\n", cfg.MaskSecret(config.GitHubToken))
		fmt.Printf("  GEMINI_API_KEY:         %s\n", cfg.MaskSecret(config.GeminiAPIKey))
		fmt.Printf("  AZURE_ENDPOINT:         %s\n", config.AzureConfig.Endpoint)
		fmt.Printf("  AZURE_API_KEY:          %s\n", cfg.MaskSecret(config.AzureConfig.APIKey))
		fmt.Printf("  AZURE_API_VERSION:      %s\n", config.AzureConfig.APIVersion)
		fmt.Printf("  GITHUB_MODELS_BASE_URL: %s\n", config.GitHubModelsBaseURL)
		return nil
	}
}
