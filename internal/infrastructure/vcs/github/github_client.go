package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

var _ ports.CommitCommenter = (*GitHubClient)(nil)

type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gc := github.NewClient(httpClient)

	return &GitHubClient{
		client: gc,
		owner:  owner,
		repo:   repo,
	}
}

// CommentCommit publica la review como comentario del commit en GitHub.
func (ghc *GitHubClient) CommentCommit(ctx context.Context, sha string, body string) error {
	log := logger.FromContext(ctx)
	log.Debug("publicando comentario",
		"owner", ghc.owner,
		"repo", ghc.repo,
		"sha", sha)

	comment := &github.RepositoryComment{
		Body: github.String(body),
	}

	_, _, err := ghc.client.Repositories.CreateComment(ctx, ghc.owner, ghc.repo, sha, comment)
	if err != nil {
		return fmt.Errorf("error al comentar el commit %s en GitHub: %w", sha, err)
	}

	return nil
}
