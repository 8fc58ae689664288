package usecase

import (
	"context"
	"path"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/infrastructure/metrics"
	"github.com/mononotes/mononotes/internal/markdown"
	usecasecontract "github.com/mononotes/mononotes/internal/usecase/contract"
	"github.com/mononotes/mononotes/internal/utils"
)

const (
	postsCacheKey = "posts:all"
	postsCacheTag = "posts"

	// concurrent blob reads per listing refresh
	fetchParallelism = 8
)

// IContentUseCase defines the read side of the content pipeline.
type IContentUseCase interface {
	ListPosts(ctx context.Context) ([]entity.Post, error)
	GetPaginatedPosts(ctx context.Context, page int) ([]entity.Post, int, int, int, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	InvalidateCache()
}

// ContentUseCase serves post reads through a TTL cache over the remote
// store, degrading to the local mirror when the remote fails or is
// unconfigured. Remote failures are logged and never surfaced to readers.
type ContentUseCase struct {
	fetcher  contract.IContentFetcher // nil when the remote is unconfigured
	mirror   contract.ILocalMirror
	cache    contract.IPostCache
	logger   usecasecontract.IAppLogger
	branch   string
	pageSize int
}

// NewContentUseCase creates a new instance of ContentUseCase.
func NewContentUseCase(fetcher contract.IContentFetcher, mirror contract.ILocalMirror, cache contract.IPostCache, logger usecasecontract.IAppLogger, branch string, pageSize int) *ContentUseCase {
	if pageSize < 1 {
		pageSize = 6
	}
	return &ContentUseCase{
		fetcher:  fetcher,
		mirror:   mirror,
		cache:    cache,
		logger:   logger,
		branch:   branch,
		pageSize: pageSize,
	}
}

var _ IContentUseCase = (*ContentUseCase)(nil)

// ListPosts returns all posts sorted by descending publish date, ties
// broken by reverse lexical file name. Results are cached until the TTL
// expires or a publish invalidates the content tag.
func (uc *ContentUseCase) ListPosts(ctx context.Context) ([]entity.Post, error) {
	if posts, ok := uc.cache.GetPosts(postsCacheKey); ok {
		metrics.IncCacheHit()
		return posts, nil
	}
	metrics.IncCacheMiss()

	posts := uc.loadPosts(ctx)
	uc.cache.SetPosts(postsCacheKey, postsCacheTag, posts)
	return posts, nil
}

// GetPaginatedPosts returns one clamped page of posts plus the current
// page, total page count and total post count.
func (uc *ContentUseCase) GetPaginatedPosts(ctx context.Context, page int) ([]entity.Post, int, int, int, error) {
	posts, err := uc.ListPosts(ctx)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	total := len(posts)
	totalPages := (total + uc.pageSize - 1) / uc.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * uc.pageSize
	end := start + uc.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return posts[start:end], page, totalPages, total, nil
}

// GetPostBySlug resolves one post by its normalized id from the same
// source set as ListPosts.
func (uc *ContentUseCase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	target := utils.Slugify(slug)
	posts, err := uc.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == target {
			post := posts[i]
			return &post, nil
		}
	}
	return nil, apperror.NotFoundf("post %q", slug)
}

// InvalidateCache drops every content-tagged cache entry. Called after a
// successful publish or delete; safe to call redundantly.
func (uc *ContentUseCase) InvalidateCache() {
	uc.cache.InvalidateTag(postsCacheTag)
}

func (uc *ContentUseCase) loadPosts(ctx context.Context) []entity.Post {
	if uc.fetcher != nil {
		posts, err := uc.loadRemote(ctx)
		if err == nil {
			return posts
		}
		uc.logger.Warningf("remote content fetch failed, serving local mirror: %v", err)
	}
	metrics.IncMirrorFallback()
	return uc.loadMirror()
}

func (uc *ContentUseCase) loadRemote(ctx context.Context) ([]entity.Post, error) {
	refs, err := uc.fetcher.ListFiles(ctx, uc.branch)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.Post, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)
	for i, ref := range refs {
		g.Go(func() error {
			raw, err := uc.fetcher.ReadFile(gctx, ref.Path, ref.Branch)
			if err != nil {
				return err
			}
			posts[i] = markdown.ToPost(path.Base(ref.Path), raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortPosts(posts)
	return posts, nil
}

func (uc *ContentUseCase) loadMirror() []entity.Post {
	files, err := uc.mirror.ListFiles()
	if err != nil {
		uc.logger.Errorf("local mirror scan failed: %v", err)
		return []entity.Post{}
	}

	posts := make([]entity.Post, 0, len(files))
	for _, file := range files {
		posts = append(posts, markdown.ToPost(file.FileName, file.Content))
	}
	sortPosts(posts)
	return posts
}

func sortPosts(posts []entity.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di := parsePostDate(posts[i].Date)
		dj := parsePostDate(posts[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return posts[i].FileName > posts[j].FileName
	})
}

func parsePostDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
