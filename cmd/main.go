package main

import (
	"context"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MateReview/internal/cli/command/config"
	"github.com/Tomas-vilte/MateReview/internal/cli/command/hooks"
	"github.com/Tomas-vilte/MateReview/internal/cli/command/review"
	"github.com/Tomas-vilte/MateReview/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/openai"
	aireg "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/git"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/lint"
	vcsgithub "github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	cfgApp := cfg.LoadFromEnv()

	logger.Initialize(cfgApp.Debug, cfgApp.Verbose)

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	reviewers := aireg.NewReviewerRegistry()
	if err := reviewers.Register("openai", openai.NewOpenAIFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}
	if err := reviewers.Register("azure", openai.NewAzureFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Azure: %v", err)
	}
	if err := reviewers.Register("github", openai.NewGitHubFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor GitHub Models: %v", err)
	}
	if err := reviewers.Register("gemini", gemini.NewGeminiFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	newService := func(repoPath string) *services.ReviewService {
		gitService := git.NewGitService(repoPath)
		linter := lint.NewRuffRunner(cfgApp.RuffBin, repoPath)
		newCommenter := func(owner, repo, token string) ports.CommitCommenter {
			return vcsgithub.NewGitHubClient(owner, repo, token)
		}
		return services.NewReviewService(cfgApp, translations, gitService, linter, reviewers, newCommenter)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("review", review.NewReviewCommandFactory(newService)); err != nil {
		log.Fatalf("Error al registrar el comando 'review': %v", err)
	}

	if err := registerCommand.Register("hooks", hooks.NewHooksCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'hooks': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "matereview",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Value:   cfgApp.Language,
				Usage:   translations.GetMessage("lang_flag_usage", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if lang := cmd.String("lang"); lang != cfgApp.Language {
				if err := translations.SetLanguage(lang); err != nil {
					return ctx, err
				}
				cfgApp.Language = lang
			}
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
