package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/services"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// abortServiceError maps service sentinels onto HTTP statuses:
// validation failures become 400, missing records become 404.
func abortServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, services.ErrEmptyTitle),
		errors.Is(err, services.ErrTitleTooLong),
		errors.Is(err, services.ErrInvalidDueDate),
		errors.Is(err, services.ErrDueDateInPast),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrContentTooLong),
		errors.Is(err, services.ErrInvalidSettings):
		abort(c, newBadRequestError(err.Error()))
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTrophyNotFound),
		errors.Is(err, services.ErrEntryNotFound):
		abort(c, newNotFoundError(err.Error()))
	default:
		c.AbortWithStatus(http.StatusInternalServerError)
	}
	return true
}
