package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/mock"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockLintRunner struct {
		mock.Mock
	}

	MockReviewer struct {
		mock.Mock
	}

	MockCommitCommenter struct {
		mock.Mock
	}
)

func (m *MockGitService) GetLatestCommit(ctx context.Context) (models.CommitInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CommitInfo), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func (m *MockLintRunner) Check(ctx context.Context, files []string) string {
	args := m.Called(ctx, files)
	return args.String(0)
}

func (m *MockLintRunner) FormatCheck(ctx context.Context, files []string) string {
	args := m.Called(ctx, files)
	return args.String(0)
}

func (m *MockReviewer) GenerateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Review), args.Error(1)
}

// Name no pasa por el mock: el service lo usa solo para el logging.
func (m *MockReviewer) Name() string { return "github" }

func (m *MockCommitCommenter) CommentCommit(ctx context.Context, sha string, body string) error {
	args := m.Called(ctx, sha, body)
	return args.Error(0)
}

// mockReviewerFactory registra un reviewer fijo en el registry de tests.
type mockReviewerFactory struct {
	reviewer ports.Reviewer
	err      error
	name     string
}

func (f *mockReviewerFactory) CreateReviewer(_ context.Context, _ *config.Config, _ *i18n.Translations) (ports.Reviewer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviewer, nil
}

func (f *mockReviewerFactory) Name() string { return f.name }
