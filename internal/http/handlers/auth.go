package handlers

import (
	"net/http"
	"time"

	"productcatalog/internal/http/middleware"
	"productcatalog/internal/services"
	"productcatalog/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth services.AuthService
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/token
func (h AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	token, expiresAt, err := h.Auth.Issue(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "token_issued", "subject="+req.Username)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}
