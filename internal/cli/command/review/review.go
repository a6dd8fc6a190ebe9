package review

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
	"github.com/urfave/cli/v3"
)

// ServiceBuilder arma la pipeline de review para el repo indicado.
type ServiceBuilder func(repoPath string) *services.ReviewService

type ReviewCommandFactory struct {
	newService ServiceBuilder
}

func NewReviewCommandFactory(newService ServiceBuilder) *ReviewCommandFactory {
	return &ReviewCommandFactory{
		newService: newService,
	}
}

func (f *ReviewCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "review",
		Aliases:     []string{"r"},
		Usage:       t.GetMessage("review_command_usage", 0, nil),
		Description: t.GetMessage("review_command_description", 0, nil),
		ArgsUsage:   "[repo-path]",
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *ReviewCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "publish",
			Aliases: []string{"p"},
			Value:   cfg.PublishReview,
			Usage:   t.GetMessage("review_publish_flag_usage", 0, nil),
		},
	}
}

func (f *ReviewCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		repoPath := command.Args().First()
		if repoPath == "" {
			repoPath = "."
		}
		repoPath, err := filepath.Abs(repoPath)
		if err != nil {
			return fmt.Errorf("error al resolver la ruta del repo: %w", err)
		}

		fmt.Println(t.GetMessage("reviewing_commit", 0, map[string]interface{}{
			"Path": repoPath,
		}))
		fmt.Println()

		ctx = logger.With(ctx, "repo", repoPath)

		service := f.newService(repoPath)
		result, err := service.ReviewLatestCommit(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Review)

		if command.Bool("publish") {
			if err := service.PublishReview(ctx, result); err != nil {
				// La publicación nunca voltea la review ya impresa
				fmt.Println(t.GetMessage("publish_failed", 0, map[string]interface{}{
					"Error": err.Error(),
				}))
				return nil
			}
			fmt.Println(t.GetMessage("publish_success", 0, map[string]interface{}{
				"SHA": result.Commit.ShortSHA(),
			}))
		}

		return nil
	}
}
