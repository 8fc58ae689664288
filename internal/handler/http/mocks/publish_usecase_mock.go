package mocks

import (
	"context"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/usecase"
)

// MockPublishUsecase is a mock implementation of the IPublishUseCase interface
type MockPublishUsecase struct {
	// Control mock behavior
	ShouldFailValidation bool
	ShouldConflict       bool
	ShouldMissOnDelete   bool
	ShouldBeUnconfigured bool

	// Captured calls
	LastPublishInput *usecase.PublishInput
	DeletedSlug      string
}

// Ensure MockPublishUsecase implements the correct interface for the handlers
var _ usecase.IPublishUseCase = (*MockPublishUsecase)(nil)

func NewMockPublishUsecase() *MockPublishUsecase {
	return &MockPublishUsecase{}
}

func (m *MockPublishUsecase) Publish(ctx context.Context, input usecase.PublishInput) (*usecase.PublishResult, error) {
	m.LastPublishInput = &input
	if m.ShouldBeUnconfigured {
		return nil, apperror.Configurationf("GITHUB_TOKEN or REPO is not configured, publishing is disabled")
	}
	if m.ShouldFailValidation {
		return nil, apperror.Validationf("title must not be empty")
	}
	if m.ShouldConflict {
		return nil, apperror.ErrConcurrentModification
	}
	return &usecase.PublishResult{
		Path:    "content/posts/" + input.Slug + ".md",
		SHA:     "mock-sha",
		Created: true,
		Message: "post saved, changes go live on the next deploy",
	}, nil
}

func (m *MockPublishUsecase) Unpublish(ctx context.Context, slug, branch, message string) (*usecase.DeleteResult, error) {
	m.DeletedSlug = slug
	if m.ShouldMissOnDelete {
		return nil, apperror.NotFoundf("post %q has no file", slug)
	}
	return &usecase.DeleteResult{
		Path:    "content/posts/" + slug + ".md",
		Message: "post deleted, changes go live on the next deploy",
	}, nil
}
