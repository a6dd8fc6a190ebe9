package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations carga el bundle de mensajes: los defaults en inglés van
// embebidos y los archivos locales/active.*.toml agregan otros idiomas.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "AI review of your latest commit, right from the post-commit hook"

	[app_description]
	other = "MateReview collects the diff of the most recent commit, runs ruff over the touched files and asks an LLM for a structured code review."

	[help_command_usage]
	other = "Shows help"

	[lang_flag_usage]
	other = "Language of the CLI messages (en, es)"

	[review_command_usage]
	other = "Review the latest commit of a repository"

	[review_command_description]
	other = "Collects the HEAD commit, runs lint and format checks and prints the AI review"

	[review_publish_flag_usage]
	other = "Publish the review as a commit comment on GitHub"

	[reviewing_commit]
	other = "🔍 Reviewing latest commit in {{.Path}}..."

	[review_empty]
	other = "No review generated."

	[review_generation_error]
	other = "Error generating the review: {{.Error}}"

	[publish_success]
	other = "Review published as a comment on commit {{.SHA}}"

	[publish_failed]
	other = "Warning: could not publish the review: {{.Error}}"

	[hooks_command_usage]
	other = "Manage the post-commit review hook"

	[hooks_install_usage]
	other = "Install the post-commit hook into one or more repositories"

	[hooks_uninstall_usage]
	other = "Remove the post-commit hook from one or more repositories"

	[hooks_scan_flag_usage]
	other = "Scan a directory for git repositories (one level deep)"

	[no_repos_specified]
	other = "No repos specified. Use --scan <dir> or pass repo paths."

	[skipping_not_repo]
	other = "  ⚠ Skipping {{.Repo}} (not a git repo)"

	[hook_already_installed]
	other = "  ↻ Hook already installed in {{.Repo}}"

	[hook_appended]
	other = "  ⊕ Appending review hook to existing post-commit in {{.Repo}}"

	[hook_installed]
	other = "  ✓ Installing post-commit hook in {{.Repo}}"

	[hook_removed]
	other = "  ✗ Removed post-commit hook from {{.Repo}}"

	[hook_not_present]
	other = "  - No post-commit hook in {{.Repo}}"

	[hook_not_ours]
	other = "  - Hook in {{.Repo}} was not installed by matereview, skipping"

	[hooks_done]
	other = "Done."

	[config_command_usage]
	other = "Inspect the effective configuration"

	[config_show_usage]
	other = "Print the configuration resolved from the environment"

	[current_config]
	other = "Current configuration"

	[error_missing_openai_key]
	other = "OPENAI_API_KEY is not set. Export your OpenAI key before running a review."

	[error_missing_github_token]
	other = "GITHUB_TOKEN is not set. Add a GitHub PAT with access to GitHub Models."

	[error_missing_azure_config]
	other = "AZURE_ENDPOINT and AZURE_API_KEY must be set when LLM_PROVIDER=azure."

	[error_missing_gemini_key]
	other = "GEMINI_API_KEY is not set. Export your Gemini key before running a review."

	[error_unknown_provider]
	other = "Unknown provider '{{.Provider}}'. Supported: {{.Supported}}."

	[error_gemini_client]
	other = "Could not create the Gemini client: {{.Error}}"

	[error_remote_info]
	other = "Could not resolve owner/repo from the origin remote: {{.Error}}"

	[error_publish_no_token]
	other = "Publishing is enabled but no GitHub token is configured."

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"
	`
