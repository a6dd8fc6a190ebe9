package ports

import "context"

// CommitCommenter publica la review generada como comentario del commit en el VCS.
type CommitCommenter interface {
	CommentCommit(ctx context.Context, sha string, body string) error
}
