package graph

import (
	"context"
	"net/http"

	"productcatalog/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type contextKey string

const (
	authHeaderContextKey contextKey = "authHeader"
	requestIDContextKey  contextKey = "requestID"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against the schema. The Authorization
// header rides the context so mutation resolvers can consult the shared
// authorizer; validation and auth failures come back as entries in the
// standard "errors" array with HTTP 200.
func Handler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid graphql request body"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), authHeaderContextKey, c.GetHeader("Authorization"))
		ctx = context.WithValue(ctx, requestIDContextKey, middleware.GetRequestID(c))

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        ctx,
		})
		c.JSON(http.StatusOK, result)
	}
}

func authHeaderFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(authHeaderContextKey).(string)
	return s
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(requestIDContextKey).(string)
	return s
}
