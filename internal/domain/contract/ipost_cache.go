package contract

import "github.com/mononotes/mononotes/internal/domain/entity"

// IPostCache is the process-local memoization of post fetch results.
// Entries carry a tag so a successful write can drop every content entry
// in one call, regardless of remaining TTL.
type IPostCache interface {
	GetPosts(key string) ([]entity.Post, bool)
	SetPosts(key, tag string, posts []entity.Post)
	InvalidateTag(tag string)
}
