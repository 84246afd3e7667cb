package workspaces

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/workspace"
)

func okSpeakers(v workspace.SpeakersView) types.SpeakersResponse {
	return types.SpeakersResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		SpeakersView: v,
	}
}

// GetSpeakers lists the editable default speakers
// @Summary      List speakers
// @Description  Distinct default speakers of parsed rows, sorted, with their pending display names
// @Tags         speakers
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.SpeakersResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/speakers [get]
func GetSpeakers(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := deps.Workspaces.Speakers(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okSpeakers(v))
	}
}

// SetRename stores a pending display name
// @Summary      Set pending rename
// @Description  Store the display name to apply to every row of a default speaker; an empty name means no change
// @Tags         speakers
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        speaker path string true "Default speaker label, e.g. Speaker-A"
// @Param        rename body types.RenameRequest true "Pending name"
// @Success      200 {object} types.SpeakersResponse
// @Failure      404 {object} types.ErrorResponse "Workspace or speaker not found"
// @Router       /api/v1/workspaces/{id}/speakers/{speaker} [put]
func SetRename(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RenameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		v, err := deps.Workspaces.SetPendingRename(c.Request.Context(), c.Param("id"), c.Param("speaker"), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okSpeakers(v))
	}
}

// ApplyRenames copies the pending names into the rows
// @Summary      Apply renames
// @Tags         speakers
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.RowsResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/speakers/apply [post]
func ApplyRenames(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := deps.Workspaces.ApplyRenames(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.RowsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Rows:         rows,
			Count:        len(rows),
		})
	}
}
