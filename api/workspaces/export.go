package workspaces

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/workspace"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

func sendDownload(c *gin.Context, dl *workspace.Download) {
	c.Header("Content-Disposition", `attachment; filename="`+dl.Filename+`"`)
	c.Data(http.StatusOK, dl.ContentType, dl.Data)
}

// Export downloads the transcript
// @Summary      Export transcript
// @Description  Download the rows as CSV (UTF-8 with BOM), Markdown or plain text
// @Tags         export
// @Produce      text/csv
// @Produce      text/markdown
// @Produce      text/plain
// @Param        id path string true "Workspace ID"
// @Param        format query string false "csv, markdown or text" default(csv)
// @Success      200 {file} file
// @Failure      400 {object} types.ErrorResponse "Unknown format"
// @Failure      404 {object} types.ErrorResponse "Workspace not found or transcript empty"
// @Router       /api/v1/workspaces/{id}/export [get]
func Export(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, err := transcript.ParseFormat(c.DefaultQuery("format", "csv"))
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		dl, err := deps.Workspaces.Export(c.Request.Context(), c.Param("id"), format)
		if err != nil {
			types.SendError(c, err)
			return
		}
		sendDownload(c, dl)
	}
}

// DownloadSummary downloads the summary as Markdown
// @Summary      Download summary
// @Tags         export
// @Produce      text/markdown
// @Param        id path string true "Workspace ID"
// @Success      200 {file} file
// @Failure      404 {object} types.ErrorResponse "Workspace not found or no summary"
// @Router       /api/v1/workspaces/{id}/summary/download [get]
func DownloadSummary(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dl, err := deps.Workspaces.SummaryMarkdown(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		sendDownload(c, dl)
	}
}
