package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response: a human-readable
// message plus the underlying error detail.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	c.JSON(statusCode, ErrorBody{
		Message: message,
		Error:   detail,
	})
}

// mapErrorToStatus translates a failure kind into an HTTP status. This
// is the single place failure kinds are inspected.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
