package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/minutes-api/api/health"
	"github.com/killallgit/minutes-api/api/models"
	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/api/version"
	"github.com/killallgit/minutes-api/api/workspaces"
	_ "github.com/killallgit/minutes-api/docs/swagger"
)

// RegisterRoutes registers all API routes. limiter, when non-nil, guards /api/v1.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter gin.HandlerFunc) error {
	if deps == nil || deps.Workspaces == nil {
		return errors.New("workspace service is not configured")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter)
	}

	models.RegisterRoutes(v1, deps)
	workspaces.RegisterRoutes(v1.Group("/workspaces"), deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
