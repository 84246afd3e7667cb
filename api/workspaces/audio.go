package workspaces

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	"github.com/killallgit/minutes-api/internal/services/workspace"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

// PutAudio uploads the source audio
// @Summary      Upload audio
// @Description  Replace the workspace audio; rows, renames and every result are reset
// @Tags         audio
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        file formData file true "Audio file (audio/*)"
// @Success      200 {object} types.WorkspaceResponse
// @Failure      400 {object} types.ErrorResponse "Missing or non-audio file"
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/audio [put]
func PutAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Uploaded file is too large",
					Error:   string(apperrors.ErrCodeValidation),
				})
				return
			}
			types.SendBadRequest(c, "音声ファイルを選択してください。")
			return
		}

		f, err := header.Open()
		if err != nil {
			types.SendBadRequest(c, "Failed to read uploaded file")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			types.SendBadRequest(c, "Failed to read uploaded file")
			return
		}

		view, err := deps.Workspaces.SetAudio(c.Request.Context(), c.Param("id"), workspace.Audio{
			Data:     data,
			MimeType: detectMimeType(header.Header.Get("Content-Type"), header.Filename),
			Filename: header.Filename,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okWorkspace(view))
	}
}

// DeleteAudio clears the source audio
// @Summary      Clear audio
// @Description  Remove the audio; rows, renames, results and the speaker count are reset
// @Tags         audio
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.WorkspaceResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/audio [delete]
func DeleteAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.Workspaces.ClearAudio(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okWorkspace(view))
	}
}

// detectMimeType prefers the part's declared type and falls back to the extension
func detectMimeType(declared, filename string) string {
	if declared != "" && declared != "application/octet-stream" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			return mt
		}
	}
	if byExt := transcription.MimeTypeFor(filename); byExt != "" {
		return byExt
	}
	return declared
}
