package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// Get handles version requests
// @Summary      Version
// @Description  Report the service name and build information
// @Tags         health
// @Produce      json
// @Success      200 {object} object
// @Router       /version [get]
func Get(build types.BuildInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Minutes API",
			"version":     build.Version,
			"gitCommit":   build.GitCommit,
			"buildTime":   build.BuildTime,
			"description": "Meeting transcription and minutes API backed by Gemini",
			"status":      "running",
		})
	}
}
