package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../locales")
	require.NoError(t, err)
	return trans
}

func newTestRegistry(t *testing.T, reviewer ports.Reviewer, factoryErr error) *registry.ReviewerRegistry {
	t.Helper()
	reg := registry.NewReviewerRegistry()
	err := reg.Register("github", &mockReviewerFactory{reviewer: reviewer, err: factoryErr, name: "github"})
	require.NoError(t, err)
	return reg
}

func testConfig() *config.Config {
	return &config.Config{
		Provider:  config.ProviderGitHub,
		Model:     config.ModelGPT5,
		MaxTokens: 4096,
	}
}

func TestReviewLatestCommit(t *testing.T) {
	commit := models.CommitInfo{
		SHA:          "0123456789abcdef0123456789abcdef01234567",
		Message:      "fix: null check",
		Diff:         "diff --git a/app.py b/app.py",
		ChangedFiles: []string{"app.py"},
	}

	t.Run("should run the full pipeline and return the review", func(t *testing.T) {
		gitMock := new(MockGitService)
		lintMock := new(MockLintRunner)
		reviewerMock := new(MockReviewer)

		gitMock.On("GetLatestCommit", mock.Anything).Return(commit, nil)
		lintMock.On("Check", mock.Anything, commit.ChangedFiles).Return("app.py:1:1: F401")
		lintMock.On("FormatCheck", mock.Anything, commit.ChangedFiles).Return("All checks passed ✓")
		reviewerMock.On("GenerateReview", mock.Anything, mock.MatchedBy(func(req models.ReviewRequest) bool {
			return strings.Contains(req.UserPrompt, "F401") &&
				strings.Contains(req.UserPrompt, "## Commit `0123456789`") &&
				req.MaxOutputTokens == 4000
		})).Return(models.Review{Content: "**Verdict**: LGTM", TokensUsed: 100}, nil)

		service := NewReviewService(testConfig(), newTestTranslations(t), gitMock, lintMock, newTestRegistry(t, reviewerMock, nil), nil)

		result, err := service.ReviewLatestCommit(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "**Verdict**: LGTM", result.Review)
		assert.Equal(t, commit.SHA, result.Commit.SHA)
		gitMock.AssertExpectations(t)
		lintMock.AssertExpectations(t)
		reviewerMock.AssertExpectations(t)
	})

	t.Run("should degrade provider configuration errors to an ERROR string", func(t *testing.T) {
		service := NewReviewService(testConfig(), newTestTranslations(t), new(MockGitService), new(MockLintRunner),
			newTestRegistry(t, nil, errors.New("GITHUB_TOKEN is not set")), nil)

		result, err := service.ReviewLatestCommit(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "ERROR: GITHUB_TOKEN is not set", result.Review)
	})

	t.Run("should not call the provider when git fails", func(t *testing.T) {
		gitMock := new(MockGitService)
		reviewerMock := new(MockReviewer)
		gitMock.On("GetLatestCommit", mock.Anything).Return(models.CommitInfo{}, errors.New("no es un repo"))

		service := NewReviewService(testConfig(), newTestTranslations(t), gitMock, new(MockLintRunner), newTestRegistry(t, reviewerMock, nil), nil)

		_, err := service.ReviewLatestCommit(context.Background())

		require.Error(t, err)
		reviewerMock.AssertNotCalled(t, "GenerateReview", mock.Anything, mock.Anything)
	})

	t.Run("should wrap provider call errors", func(t *testing.T) {
		gitMock := new(MockGitService)
		lintMock := new(MockLintRunner)
		reviewerMock := new(MockReviewer)

		gitMock.On("GetLatestCommit", mock.Anything).Return(commit, nil)
		lintMock.On("Check", mock.Anything, mock.Anything).Return("ok")
		lintMock.On("FormatCheck", mock.Anything, mock.Anything).Return("ok")
		reviewerMock.On("GenerateReview", mock.Anything, mock.Anything).Return(models.Review{}, errors.New("status 500"))

		service := NewReviewService(testConfig(), newTestTranslations(t), gitMock, lintMock, newTestRegistry(t, reviewerMock, nil), nil)

		_, err := service.ReviewLatestCommit(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("should report an empty review", func(t *testing.T) {
		gitMock := new(MockGitService)
		lintMock := new(MockLintRunner)
		reviewerMock := new(MockReviewer)

		gitMock.On("GetLatestCommit", mock.Anything).Return(commit, nil)
		lintMock.On("Check", mock.Anything, mock.Anything).Return("ok")
		lintMock.On("FormatCheck", mock.Anything, mock.Anything).Return("ok")
		reviewerMock.On("GenerateReview", mock.Anything, mock.Anything).Return(models.Review{Content: ""}, nil)

		service := NewReviewService(testConfig(), newTestTranslations(t), gitMock, lintMock, newTestRegistry(t, reviewerMock, nil), nil)

		result, err := service.ReviewLatestCommit(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "No review generated.", result.Review)
	})
}

func TestPublishReview(t *testing.T) {
	result := ReviewResult{
		Commit: models.CommitInfo{SHA: "abc123"},
		Review: "**Verdict**: LGTM",
	}

	t.Run("should comment the reviewed commit", func(t *testing.T) {
		gitMock := new(MockGitService)
		commenterMock := new(MockCommitCommenter)
		gitMock.On("GetRepoInfo", mock.Anything).Return("mate", "review", "github", nil)
		commenterMock.On("CommentCommit", mock.Anything, "abc123", "**Verdict**: LGTM").Return(nil)

		cfg := testConfig()
		cfg.PublishToken = "ghp_token"
		var gotOwner, gotRepo string
		builder := func(owner, repo, token string) ports.CommitCommenter {
			gotOwner, gotRepo = owner, repo
			return commenterMock
		}

		service := NewReviewService(cfg, newTestTranslations(t), gitMock, new(MockLintRunner), registry.NewReviewerRegistry(), builder)

		require.NoError(t, service.PublishReview(context.Background(), result))
		assert.Equal(t, "mate", gotOwner)
		assert.Equal(t, "review", gotRepo)
		commenterMock.AssertExpectations(t)
	})

	t.Run("should fail without a token", func(t *testing.T) {
		service := NewReviewService(testConfig(), newTestTranslations(t), new(MockGitService), new(MockLintRunner), registry.NewReviewerRegistry(), nil)

		err := service.PublishReview(context.Background(), result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no GitHub token")
	})

	t.Run("should surface remote resolution failures", func(t *testing.T) {
		gitMock := new(MockGitService)
		gitMock.On("GetRepoInfo", mock.Anything).Return("", "", "", errors.New("sin remote origin"))

		cfg := testConfig()
		cfg.PublishToken = "ghp_token"
		service := NewReviewService(cfg, newTestTranslations(t), gitMock, new(MockLintRunner), registry.NewReviewerRegistry(), nil)

		err := service.PublishReview(context.Background(), result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sin remote origin")
	})
}
