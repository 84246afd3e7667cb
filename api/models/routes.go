package models

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// RegisterRoutes registers model catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/models", Get(deps))
}
