package mocks

import (
	"context"

	"github.com/mononotes/mononotes/internal/usecase"
)

// MockViewUsecase is a mock implementation of the IViewUseCase interface
type MockViewUsecase struct {
	// Control mock behavior
	ShouldThrottle bool

	// Return values
	MockViews int64
}

// Ensure MockViewUsecase implements the correct interface for the handlers
var _ usecase.IViewUseCase = (*MockViewUsecase)(nil)

func NewMockViewUsecase() *MockViewUsecase {
	return &MockViewUsecase{MockViews: 42}
}

func (m *MockViewUsecase) GetViews(ctx context.Context, slug string) int64 {
	return m.MockViews
}

func (m *MockViewUsecase) GetViewsMap(ctx context.Context, slugs []string) map[string]int64 {
	counts := make(map[string]int64, len(slugs))
	for _, slug := range slugs {
		counts[slug] = m.MockViews
	}
	return counts
}

func (m *MockViewUsecase) IncreaseViews(ctx context.Context, slug, ip, userAgent string) (bool, int64) {
	if m.ShouldThrottle {
		return false, m.MockViews
	}
	m.MockViews++
	return true, m.MockViews
}
