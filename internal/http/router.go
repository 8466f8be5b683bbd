package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"productcatalog/internal/config"
	"productcatalog/internal/graph"
	h "productcatalog/internal/http/handlers"
	"productcatalog/internal/http/middleware"
	"productcatalog/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps carries every shared dependency the routes need. Everything is
// constructed once at process start and injected; no handler reaches for a
// package global.
type Deps struct {
	Client *mongo.Client
	Store  services.ProductStore
	Auth   services.AuthService
}

func NewRouter(env config.Env, deps Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	system := h.SystemHandler{Client: deps.Client}
	auth := h.AuthHandler{Auth: deps.Auth}
	products := h.ProductHandler{Store: deps.Store}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		api.POST("/auth/token", auth.Token)

		pg := api.Group("/products")
		pg.GET("", products.List)
		pg.GET("/report", products.Report)
		pg.GET("/:id", products.GetByID)

		// Only mutations consult the authorizer; reads never do.
		mutations := pg.Group("")
		mutations.Use(middleware.RequireAuth(deps.Auth.Authorize))
		mutations.POST("", products.Create)
		mutations.PUT("/:id", products.Update)
		mutations.DELETE("/:id", products.Delete)
	}

	schema, err := graph.NewSchema(graph.Resolver{Store: deps.Store, Auth: deps.Auth})
	if err != nil {
		return nil, err
	}
	r.POST("/graphql", graph.Handler(schema))

	return r, nil
}
