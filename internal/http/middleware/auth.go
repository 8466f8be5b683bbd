package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const authSubjectKey = "auth_subject"

// RequireAuth gates mutation routes. The authorize func is the single
// authorization contract shared with the GraphQL surface; any failure aborts
// with 401 before the handler runs, so an unauthorized call never reaches
// validation or storage.
func RequireAuth(authorize func(authHeader string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, err := authorize(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(authSubjectKey, subject)
		c.Next()
	}
}

// GetAuthSubject returns the verified token subject set by RequireAuth.
func GetAuthSubject(c *gin.Context) string {
	if v, ok := c.Get(authSubjectKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
