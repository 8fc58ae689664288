package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// MapErrorStatus maps the error taxonomy onto HTTP status codes so every
// write failure stays visible with a specific, actionable message.
func MapErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrRemoteAuth):
		return http.StatusBadGateway
	case errors.Is(err, apperror.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperror.ErrConfiguration):
		return http.StatusInternalServerError
	}
	var remoteErr *apperror.RemoteError
	if errors.As(err, &remoteErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
