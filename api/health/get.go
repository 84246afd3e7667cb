package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service health, including the diagnostics database
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Database:     getDatabaseStatus(c, deps),
		}
		if deps != nil && deps.Workspaces != nil {
			response.Workspaces = deps.Workspaces.Count()
			stats := deps.Workspaces.StoreStats()
			response.Store = &stats
		}

		status := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = types.StatusError
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(c *gin.Context, deps *types.Dependencies) map[string]interface{} {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]interface{}{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(c.Request.Context()); err != nil {
		return map[string]interface{}{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]interface{}{"status": "healthy"}
}
