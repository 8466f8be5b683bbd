package handlers

import (
	"net/http"

	"productcatalog/internal/domain"
	"productcatalog/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respondError sends a standard error payload with request_id included.
func respondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Internal details
// are never echoed back to the caller.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsAuth(err):
		respondError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// bindJSONOrError ensures the body is present and parsable.
func bindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "request body required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
