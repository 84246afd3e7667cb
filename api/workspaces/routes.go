package workspaces

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// RegisterRoutes registers workspace routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Create(deps))
	router.GET("/:id", Get(deps))
	router.DELETE("/:id", Delete(deps))
	router.PATCH("/:id/settings", UpdateSettings(deps))

	router.PUT("/:id/audio", PutAudio(deps))
	router.DELETE("/:id/audio", DeleteAudio(deps))

	router.POST("/:id/transcription", StartTranscription(deps))
	router.GET("/:id/transcription", GetTranscription(deps))

	rows := router.Group("/:id/rows")
	{
		rows.GET("", ListRows(deps))
		rows.POST("", InsertRow(deps))
		rows.PATCH("/:rowId", UpdateRow(deps))
		rows.DELETE("/:rowId", DeleteRow(deps))
	}

	edit := router.Group("/:id/edit")
	{
		edit.PUT("", BeginEdit(deps))
		edit.PATCH("", UpdateEditBuffer(deps))
		edit.DELETE("", CancelEdit(deps))
		edit.POST("/commit", CommitEdit(deps))
	}

	speakers := router.Group("/:id/speakers")
	{
		speakers.GET("", GetSpeakers(deps))
		speakers.POST("/apply", ApplyRenames(deps))
		speakers.PUT("/:speaker", SetRename(deps))
	}

	router.POST("/:id/summary", StartEnrichment(deps, "summary"))
	router.GET("/:id/summary", GetEnrichment(deps, "summary"))
	router.GET("/:id/summary/download", DownloadSummary(deps))
	router.POST("/:id/keywords", StartEnrichment(deps, "keywords"))
	router.GET("/:id/keywords", GetEnrichment(deps, "keywords"))
	router.POST("/:id/action-items", StartEnrichment(deps, "action-items"))
	router.GET("/:id/action-items", GetEnrichment(deps, "action-items"))

	router.GET("/:id/export", Export(deps))
}
