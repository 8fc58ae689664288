package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mononotes/mononotes/internal/handler/http/dto"
	"github.com/mononotes/mononotes/internal/usecase"
)

// ViewHandlerInterface defines the methods for the view counter handler to
// allow interface-based dependency injection (for testing/mocking)
type ViewHandlerInterface interface {
	GetViewCountHandler(*gin.Context)
	IncreaseViewCountHandler(*gin.Context)
}

// Ensure ViewHandler implements ViewHandlerInterface
var _ ViewHandlerInterface = (*ViewHandler)(nil)

type ViewHandler struct {
	viewUsecase usecase.IViewUseCase
}

func NewViewHandler(viewUsecase usecase.IViewUseCase) *ViewHandler {
	return &ViewHandler{
		viewUsecase: viewUsecase,
	}
}

// GetViewCountHandler returns the current view count for one post.
func (h *ViewHandler) GetViewCountHandler(c *gin.Context) {
	var param dto.ViewSlugParam
	if err := c.ShouldBindUri(&param); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid slug")
		return
	}
	views := h.viewUsecase.GetViews(c.Request.Context(), param.Slug)
	SuccessHandler(c, http.StatusOK, dto.ViewCountResponse{Slug: param.Slug, Views: views})
}

// IncreaseViewCountHandler counts one view, deduplicated per visitor
// fingerprint within the throttle window. Always answers 200 for a valid
// slug: a throttled or failed increment degrades to the current count.
func (h *ViewHandler) IncreaseViewCountHandler(c *gin.Context) {
	var param dto.ViewSlugParam
	if err := c.ShouldBindUri(&param); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid slug")
		return
	}
	increased, views := h.viewUsecase.IncreaseViews(
		c.Request.Context(),
		param.Slug,
		c.ClientIP(),
		c.GetHeader("User-Agent"),
	)
	SuccessHandler(c, http.StatusOK, dto.ViewIncreaseResponse{
		Slug:      param.Slug,
		Views:     views,
		Increased: increased,
	})
}
