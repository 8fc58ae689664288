package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mononotes/mononotes/internal/handler/http/dto"
	"github.com/mononotes/mononotes/internal/markdown"
	"github.com/mononotes/mononotes/internal/usecase"
	"github.com/mononotes/mononotes/internal/utils"
)

// AdminHandlerInterface defines the methods for the admin handler to allow
// interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	ListPostsHandler(*gin.Context)
	CommitPostHandler(*gin.Context)
	UploadPostHandler(*gin.Context)
	DeletePostHandler(*gin.Context)
}

// Ensure AdminHandler implements AdminHandlerInterface
var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	contentUsecase usecase.IContentUseCase
	publishUsecase usecase.IPublishUseCase
}

func NewAdminHandler(contentUsecase usecase.IContentUseCase, publishUsecase usecase.IPublishUseCase) *AdminHandler {
	return &AdminHandler{
		contentUsecase: contentUsecase,
		publishUsecase: publishUsecase,
	}
}

// ListPostsHandler serves the admin post table, in reverse lexical file
// name order.
func (h *AdminHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.contentUsecase.ListPosts(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	rows := make([]dto.AdminPostResponse, 0, len(posts))
	for i := range posts {
		rows = append(rows, dto.AdminPostResponse{
			Slug:     posts[i].Slug,
			FileName: posts[i].FileName,
			Title:    posts[i].Title,
			Date:     posts[i].Date,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].FileName > rows[j].FileName })

	SuccessHandler(c, http.StatusOK, rows)
}

// CommitPostHandler creates or updates one post in the remote store.
func (h *AdminHandler) CommitPostHandler(c *gin.Context) {
	var req dto.CommitPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.publishUsecase.Publish(c.Request.Context(), usecase.PublishInput{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Date:      req.Date,
		UpdatedAt: req.UpdatedAt,
		Tags:      req.Tags,
		Cover:     req.Cover,
		Content:   req.Content,
		Message:   req.Message,
		Branch:    req.Branch,
	})
	if err != nil {
		ErrorHandler(c, MapErrorStatus(err), err.Error())
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	SuccessHandler(c, status, dto.CommitPostResponse{
		Path:    result.Path,
		SHA:     result.SHA,
		Created: result.Created,
		Message: result.Message,
	})
}

// UploadPostHandler publishes a raw markdown file as-is: the slug comes
// from the file name and the metadata block from the file itself.
func (h *AdminHandler) UploadPostHandler(c *gin.Context) {
	var req dto.UploadPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if !utils.IsLikelyMarkdown(req.Content) {
		ErrorHandler(c, http.StatusBadRequest, "File content does not look like markdown")
		return
	}

	slug := utils.SanitizeSlug(utils.SlugFromFileName(req.FileName))
	fm, body := markdown.Decode(req.Content)
	title := fm.Title
	if strings.TrimSpace(title) == "" {
		title = slug
	}

	result, err := h.publishUsecase.Publish(c.Request.Context(), usecase.PublishInput{
		Slug:      slug,
		Title:     title,
		Excerpt:   fm.Excerpt,
		Date:      fm.Date,
		UpdatedAt: fm.UpdatedAt,
		Tags:      fm.Tags,
		Cover:     fm.Cover,
		Content:   body,
		Message:   req.Message,
		Branch:    req.Branch,
	})
	if err != nil {
		ErrorHandler(c, MapErrorStatus(err), err.Error())
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	SuccessHandler(c, status, dto.CommitPostResponse{
		Path:    result.Path,
		SHA:     result.SHA,
		Created: result.Created,
		Message: result.Message,
	})
}

// DeletePostHandler removes one post from the remote store.
func (h *AdminHandler) DeletePostHandler(c *gin.Context) {
	slug := c.Param("slug")
	branch := c.Query("branch")
	message := c.Query("message")

	result, err := h.publishUsecase.Unpublish(c.Request.Context(), slug, branch, message)
	if err != nil {
		ErrorHandler(c, MapErrorStatus(err), err.Error())
		return
	}

	SuccessHandler(c, http.StatusOK, dto.DeletePostResponse{
		Path:    result.Path,
		Message: result.Message,
	})
}
