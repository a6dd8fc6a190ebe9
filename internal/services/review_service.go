package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

// CommenterBuilder crea el cliente VCS para publicar la review de un repo.
type CommenterBuilder func(owner, repo, token string) ports.CommitCommenter

// ReviewService encadena la pipeline completa: recolectar el commit, correr
// ruff, armar el mensaje acotado y hacer una única llamada al proveedor.
type ReviewService struct {
	cfg          *config.Config
	trans        *i18n.Translations
	git          ports.GitService
	linter       ports.LintRunner
	reviewers    *registry.ReviewerRegistry
	newCommenter CommenterBuilder
}

func NewReviewService(
	cfg *config.Config,
	trans *i18n.Translations,
	git ports.GitService,
	linter ports.LintRunner,
	reviewers *registry.ReviewerRegistry,
	newCommenter CommenterBuilder,
) *ReviewService {
	return &ReviewService{
		cfg:          cfg,
		trans:        trans,
		git:          git,
		linter:       linter,
		reviewers:    reviewers,
		newCommenter: newCommenter,
	}
}

// ReviewResult junta la review con el commit que la originó.
type ReviewResult struct {
	Commit models.CommitInfo
	Review string
}

// ReviewLatestCommit corre la pipeline sobre el HEAD del repo. Los problemas
// de configuración del proveedor se degradan a un texto "ERROR: ..." para que
// el hook los muestre sin romper el commit.
func (s *ReviewService) ReviewLatestCommit(ctx context.Context) (ReviewResult, error) {
	log := logger.FromContext(ctx)

	reviewer, err := s.reviewers.CreateFromConfig(ctx, s.cfg, s.trans)
	if err != nil {
		log.Error("no se pudo crear el reviewer", "error", err)
		return ReviewResult{Review: fmt.Sprintf("ERROR: %s", err.Error())}, nil
	}

	commit, err := s.git.GetLatestCommit(ctx)
	if err != nil {
		return ReviewResult{}, err
	}

	log.Info("revisando commit",
		"sha", commit.ShortSHA(),
		"provider", reviewer.Name(),
		"files", len(commit.ChangedFiles))

	report := models.LintReport{
		Check:       s.linter.Check(ctx, commit.ChangedFiles),
		FormatCheck: s.linter.FormatCheck(ctx, commit.ChangedFiles),
	}

	request := models.ReviewRequest{
		SystemPrompt:    ai.SystemPrompt,
		UserPrompt:      ai.BuildReviewMessage(commit, report, ai.InputCharBudget(s.cfg)),
		MaxOutputTokens: ai.MaxOutputTokens(s.cfg),
	}

	review, err := reviewer.GenerateReview(ctx, request)
	if err != nil {
		msg := s.trans.GetMessage("review_generation_error", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return ReviewResult{Commit: commit}, fmt.Errorf("%s", msg)
	}

	log.Debug("review generada", "tokens", review.TokensUsed)

	content := review.Content
	if content == "" {
		content = s.trans.GetMessage("review_empty", 0, nil)
	}

	return ReviewResult{Commit: commit, Review: content}, nil
}

// PublishReview comenta el commit revisado en GitHub. Se llama solo cuando la
// publicación está habilitada; sus errores no voltean la review.
func (s *ReviewService) PublishReview(ctx context.Context, result ReviewResult) error {
	if s.cfg.PublishToken == "" {
		return fmt.Errorf("%s", s.trans.GetMessage("error_publish_no_token", 0, nil))
	}

	owner, repo, _, err := s.git.GetRepoInfo(ctx)
	if err != nil {
		msg := s.trans.GetMessage("error_remote_info", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return fmt.Errorf("%s", msg)
	}

	commenter := s.newCommenter(owner, repo, s.cfg.PublishToken)
	return commenter.CommentCommit(ctx, result.Commit.SHA, result.Review)
}
