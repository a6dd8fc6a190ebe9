package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/hook"
	"github.com/urfave/cli/v3"
)

type HooksCommandFactory struct{}

func NewHooksCommandFactory() *HooksCommandFactory {
	return &HooksCommandFactory{}
}

func (f *HooksCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hooks",
		Usage: t.GetMessage("hooks_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.createInstallCommand(t),
			f.createUninstallCommand(t),
		},
	}
}

func (f *HooksCommandFactory) createInstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     t.GetMessage("hooks_install_usage", 0, nil),
		ArgsUsage: "[repo-paths...]",
		Flags:     f.createFlags(t),
		Action: f.createAction(t, func(installer *hook.Installer, repo string) error {
			return installer.Install(repo)
		}),
	}
}

func (f *HooksCommandFactory) createUninstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "uninstall",
		Usage:     t.GetMessage("hooks_uninstall_usage", 0, nil),
		ArgsUsage: "[repo-paths...]",
		Flags:     f.createFlags(t),
		Action: f.createAction(t, func(installer *hook.Installer, repo string) error {
			return installer.Uninstall(repo)
		}),
	}
}

func (f *HooksCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "scan",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("hooks_scan_flag_usage", 0, nil),
		},
	}
}

func (f *HooksCommandFactory) createAction(t *i18n.Translations, apply func(*hook.Installer, string) error) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		repos, err := resolveRepos(command)
		if err != nil {
			return err
		}

		if len(repos) == 0 {
			return cli.Exit(t.GetMessage("no_repos_specified", 0, nil), 1)
		}

		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("error al resolver el binario de matereview: %w", err)
		}

		installer := hook.NewInstaller(execPath, t, os.Stdout)
		for _, repo := range repos {
			if !hook.IsGitRepo(repo) {
				fmt.Println(t.GetMessage("skipping_not_repo", 0, map[string]interface{}{
					"Repo": repo,
				}))
				continue
			}
			if err := apply(installer, repo); err != nil {
				return err
			}
		}

		fmt.Println()
		fmt.Println(t.GetMessage("hooks_done", 0, nil))
		return nil
	}
}

// resolveRepos junta los repos del flag --scan y los argumentos posicionales.
func resolveRepos(command *cli.Command) ([]string, error) {
	repos := make([]string, 0)

	if scanDir := command.String("scan"); scanDir != "" {
		found, err := hook.FindRepos(scanDir)
		if err != nil {
			return nil, err
		}
		repos = append(repos, found...)
	}

	for _, arg := range command.Args().Slice() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("error al resolver la ruta '%s': %w", arg, err)
		}
		repos = append(repos, abs)
	}

	return repos, nil
}
