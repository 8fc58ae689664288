package contract

import (
	"context"

	"github.com/mononotes/mononotes/internal/domain/entity"
)

// PutFileInput describes a conditional create/update against the remote store.
// An empty SHA declares "no existing file expected"; a non-empty SHA is the
// compare-and-swap token for an update.
type PutFileInput struct {
	Path    string
	Branch  string
	Message string
	Content string
	SHA     string
}

// IContentFetcher provides read and conditional-write access to the remote
// content store. All calls carry a bounded timeout through ctx.
type IContentFetcher interface {
	// ListFiles lists all content files and their version hashes for a branch.
	ListFiles(ctx context.Context, branch string) ([]entity.RemoteFileRef, error)
	// ReadFile fetches one file's full decoded text content.
	ReadFile(ctx context.Context, path, branch string) (string, error)
	// HeadFile returns the current version hash of a path, or "" if the path
	// does not exist at that branch. Absence is not an error.
	HeadFile(ctx context.Context, path, branch string) (string, error)
	// PutFile performs the conditional create/update and returns the new
	// version hash of the written file.
	PutFile(ctx context.Context, input PutFileInput) (string, error)
	// DeleteFile removes a file, with sha as the compare-and-swap token.
	DeleteFile(ctx context.Context, path, sha, branch, message string) error
}
