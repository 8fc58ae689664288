package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/mononotes/mononotes/internal/handler/http"
	dto "github.com/mononotes/mononotes/internal/handler/http/dto"
	mocks "github.com/mononotes/mononotes/internal/handler/http/mocks"
	"github.com/mononotes/mononotes/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupPostRouter(h handler.PostHandlerInterface) *gin.Engine {
	r := gin.New()
	r.GET("/posts", h.GetPostsHandler)
	r.GET("/posts/:slug", h.GetPostDetailHandler)
	return r
}

func TestGetPosts(t *testing.T) {
	h := handler.NewPostHandler(mocks.NewMockContentUsecase(), mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaginatedPostsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, "hello-world", resp.Posts[0].Slug)
	assert.Equal(t, int64(42), resp.Posts[0].Views)
	assert.Equal(t, "1 min read", resp.Posts[0].ReadingTime)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.TotalCount)
}

func TestGetPosts_BadPage(t *testing.T) {
	h := handler.NewPostHandler(mocks.NewMockContentUsecase(), mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?page=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid page number")
}

func TestGetPosts_Fail(t *testing.T) {
	mockContent := mocks.NewMockContentUsecase()
	mockContent.ShouldFailList = true
	h := handler.NewPostHandler(mockContent, mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load posts")
}

func TestGetPostDetail(t *testing.T) {
	h := handler.NewPostHandler(mocks.NewMockContentUsecase(), mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/hello-world", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PostDetailResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello-world", resp.Slug)
	assert.Equal(t, "## Welcome\n\nSome words.", resp.Content)
	assert.Equal(t, int64(42), resp.Views)
	assert.Len(t, resp.Toc, 1)
	assert.Equal(t, "welcome", resp.Toc[0].ID)
}

func TestGetPostDetail_NotFound(t *testing.T) {
	mockContent := mocks.NewMockContentUsecase()
	mockContent.ShouldMissBySlug = true
	h := handler.NewPostHandler(mockContent, mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post not found")
}

func TestGetPostDetail_Fail(t *testing.T) {
	mockContent := mocks.NewMockContentUsecase()
	mockContent.ShouldFailBySlug = true
	h := handler.NewPostHandler(mockContent, mocks.NewMockViewUsecase())
	r := setupPostRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/hello-world", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load post")
}
