package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/handler/http/dto"
	"github.com/mononotes/mononotes/internal/markdown"
	"github.com/mononotes/mononotes/internal/usecase"
)

// PostHandlerInterface defines the methods for the public post handler to
// allow interface-based dependency injection (for testing/mocking)
type PostHandlerInterface interface {
	GetPostsHandler(*gin.Context)
	GetPostDetailHandler(*gin.Context)
}

// Ensure PostHandler implements PostHandlerInterface
var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	contentUsecase usecase.IContentUseCase
	viewUsecase    usecase.IViewUseCase
}

func NewPostHandler(contentUsecase usecase.IContentUseCase, viewUsecase usecase.IViewUseCase) *PostHandler {
	return &PostHandler{
		contentUsecase: contentUsecase,
		viewUsecase:    viewUsecase,
	}
}

// GetPostsHandler serves one page of post summaries with view counts.
func (h *PostHandler) GetPostsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	posts, currentPage, totalPages, total, err := h.contentUsecase.GetPaginatedPosts(c.Request.Context(), page)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	slugs := make([]string, len(posts))
	for i := range posts {
		slugs[i] = posts[i].Slug
	}
	views := h.viewUsecase.GetViewsMap(c.Request.Context(), slugs)

	summaries := make([]dto.PostSummaryResponse, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, dto.ToPostSummaryResponse(&posts[i], views[posts[i].Slug]))
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedPostsResponse{
		Posts:      summaries,
		Page:       currentPage,
		TotalPages: totalPages,
		TotalCount: total,
	})
}

// GetPostDetailHandler serves one full post with its table of contents.
func (h *PostHandler) GetPostDetailHandler(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.contentUsecase.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Post not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load post")
		return
	}

	views := h.viewUsecase.GetViews(c.Request.Context(), post.Slug)
	toc := markdown.ExtractTOC(post.Content)

	SuccessHandler(c, http.StatusOK, dto.ToPostDetailResponse(post, views, toc))
}
