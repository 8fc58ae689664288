package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/infrastructure/metrics"
	"github.com/mononotes/mononotes/internal/markdown"
	usecasecontract "github.com/mononotes/mononotes/internal/usecase/contract"
	"github.com/mononotes/mononotes/internal/utils"
)

// CacheInvalidator is the slice of the content store the coordinator needs
// after a confirmed write.
type CacheInvalidator interface {
	InvalidateCache()
}

// PublishInput is one create-or-update request.
type PublishInput struct {
	Slug      string
	Title     string
	Excerpt   string
	Date      string
	UpdatedAt string
	Tags      []string
	Cover     string
	Content   string
	Message   string
	Branch    string
}

// PublishResult reports where the document landed and its new version hash.
type PublishResult struct {
	Path    string
	SHA     string
	Created bool
	Message string
}

// DeleteResult reports which file was removed.
type DeleteResult struct {
	Path    string
	Message string
}

// IPublishUseCase defines the write side of the content pipeline.
type IPublishUseCase interface {
	Publish(ctx context.Context, input PublishInput) (*PublishResult, error)
	Unpublish(ctx context.Context, slug, branch, message string) (*DeleteResult, error)
}

// PublishUseCase executes conditional writes against the remote store:
// Validate, resolve the version-hash precondition, write, invalidate the
// content cache, then fire the deploy hook. A write is attempted at most
// once; a stale hash surfaces as ErrConcurrentModification and is never
// retried here.
type PublishUseCase struct {
	fetcher     contract.IContentFetcher // nil when the remote is unconfigured
	invalidator CacheInvalidator
	notifier    contract.IDeployNotifier // nil when no hook is configured
	logger      usecasecontract.IAppLogger
	branch      string
	contentDir  string
}

// NewPublishUseCase creates a new instance of PublishUseCase.
func NewPublishUseCase(fetcher contract.IContentFetcher, invalidator CacheInvalidator, notifier contract.IDeployNotifier, logger usecasecontract.IAppLogger, branch, contentDir string) *PublishUseCase {
	return &PublishUseCase{
		fetcher:     fetcher,
		invalidator: invalidator,
		notifier:    notifier,
		logger:      logger,
		branch:      branch,
		contentDir:  strings.Trim(contentDir, "/"),
	}
}

var _ IPublishUseCase = (*PublishUseCase)(nil)

// Publish creates or updates one post. An absent remote file makes this a
// create; a present one makes it an update carrying the current hash as
// the compare-and-swap token.
func (uc *PublishUseCase) Publish(ctx context.Context, input PublishInput) (*PublishResult, error) {
	if uc.fetcher == nil {
		return nil, apperror.Configurationf("GITHUB_TOKEN or REPO is not configured, publishing is disabled")
	}

	slug := utils.SanitizeSlug(input.Slug)
	if slug == "" {
		return nil, apperror.Validationf("slug is empty or reduces to nothing after normalization")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.Validationf("title must not be empty")
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, apperror.Validationf("date must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperror.Validationf("content must not be empty")
	}

	branch := uc.resolveBranch(input.Branch)
	filePath := fmt.Sprintf("%s/%s.md", uc.contentDir, slug)

	sha, err := uc.fetcher.HeadFile(ctx, filePath, branch)
	if err != nil {
		metrics.IncPublish("publish", "failure")
		return nil, err
	}
	created := sha == ""

	raw := markdown.Encode(entity.Post{
		Slug:      slug,
		Title:     strings.TrimSpace(input.Title),
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Date:      strings.TrimSpace(input.Date),
		UpdatedAt: strings.TrimSpace(input.UpdatedAt),
		Tags:      normalizeTags(input.Tags),
		Cover:     strings.TrimSpace(input.Cover),
		Content:   input.Content,
	})

	message := strings.TrimSpace(input.Message)
	if message == "" {
		if created {
			message = fmt.Sprintf("create post: %s", slug)
		} else {
			message = fmt.Sprintf("update post: %s", slug)
		}
	}

	newSHA, err := uc.fetcher.PutFile(ctx, contract.PutFileInput{
		Path:    filePath,
		Branch:  branch,
		Message: message,
		Content: raw,
		SHA:     sha,
	})
	if err != nil {
		metrics.IncPublish("publish", "failure")
		return nil, err
	}
	metrics.IncPublish("publish", "success")

	uc.invalidator.InvalidateCache()

	return &PublishResult{
		Path:    filePath,
		SHA:     newSHA,
		Created: created,
		Message: uc.notifyDeploy(ctx, "post saved, changes go live on the next deploy"),
	}, nil
}

// Unpublish deletes one post, resolving whichever recognized extension
// currently exists and using its hash as the delete precondition.
func (uc *PublishUseCase) Unpublish(ctx context.Context, slug, branch, message string) (*DeleteResult, error) {
	if uc.fetcher == nil {
		return nil, apperror.Configurationf("GITHUB_TOKEN or REPO is not configured, publishing is disabled")
	}

	slug = utils.SanitizeSlug(slug)
	if slug == "" {
		return nil, apperror.Validationf("slug is empty or reduces to nothing after normalization")
	}
	branch = uc.resolveBranch(branch)

	var filePath, sha string
	for _, ext := range []string{".md", ".mdx"} {
		candidate := fmt.Sprintf("%s/%s%s", uc.contentDir, slug, ext)
		current, err := uc.fetcher.HeadFile(ctx, candidate, branch)
		if err != nil {
			metrics.IncPublish("delete", "failure")
			return nil, err
		}
		if current != "" {
			filePath, sha = candidate, current
			break
		}
	}
	if sha == "" {
		return nil, apperror.NotFoundf("post %q has no file on branch %s", slug, branch)
	}

	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("delete post: %s", slug)
	}
	if err := uc.fetcher.DeleteFile(ctx, filePath, sha, branch, message); err != nil {
		metrics.IncPublish("delete", "failure")
		return nil, err
	}
	metrics.IncPublish("delete", "success")

	uc.invalidator.InvalidateCache()

	return &DeleteResult{
		Path:    filePath,
		Message: uc.notifyDeploy(ctx, "post deleted, changes go live on the next deploy"),
	}, nil
}

// notifyDeploy fires the deploy hook after a confirmed write. A hook
// failure only downgrades the success message.
func (uc *PublishUseCase) notifyDeploy(ctx context.Context, successMessage string) string {
	if uc.notifier == nil {
		return successMessage
	}
	if err := uc.notifier.Notify(ctx); err != nil {
		uc.logger.Warningf("deploy hook failed: %v", err)
		return successMessage + ", but the deploy hook failed"
	}
	return successMessage
}

func (uc *PublishUseCase) resolveBranch(branch string) string {
	if strings.TrimSpace(branch) != "" {
		return strings.TrimSpace(branch)
	}
	return uc.branch
}

func normalizeTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
