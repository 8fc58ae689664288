package mocks

import (
	"context"
	"errors"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/usecase"
)

// MockContentUsecase is a mock implementation of the IContentUseCase interface
type MockContentUsecase struct {
	// Control mock behavior
	ShouldFailList   bool
	ShouldMissBySlug bool
	ShouldFailBySlug bool
	InvalidateCalled int

	// Return values
	MockPosts []entity.Post
}

// Ensure MockContentUsecase implements the correct interface for the handlers
var _ usecase.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{
		MockPosts: []entity.Post{
			{
				Slug:     "hello-world",
				Title:    "Hello World",
				Excerpt:  "The first post.",
				Date:     "2026-01-02",
				Tags:     []string{"intro"},
				Content:  "## Welcome\n\nSome words.",
				FileName: "hello-world.md",
			},
			{
				Slug:     "second-post",
				Title:    "Second Post",
				Excerpt:  "Another one.",
				Date:     "2026-01-01",
				Tags:     []string{},
				Content:  "More words.",
				FileName: "second-post.md",
			},
		},
	}
}

func (m *MockContentUsecase) ListPosts(ctx context.Context) ([]entity.Post, error) {
	if m.ShouldFailList {
		return nil, errors.New("listing failed")
	}
	return m.MockPosts, nil
}

func (m *MockContentUsecase) GetPaginatedPosts(ctx context.Context, page int) ([]entity.Post, int, int, int, error) {
	if m.ShouldFailList {
		return nil, 0, 0, 0, errors.New("listing failed")
	}
	return m.MockPosts, 1, 1, len(m.MockPosts), nil
}

func (m *MockContentUsecase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	if m.ShouldFailBySlug {
		return nil, errors.New("lookup failed")
	}
	if m.ShouldMissBySlug {
		return nil, apperror.NotFoundf("post %q", slug)
	}
	post := m.MockPosts[0]
	return &post, nil
}

func (m *MockContentUsecase) InvalidateCache() {
	m.InvalidateCalled++
}
