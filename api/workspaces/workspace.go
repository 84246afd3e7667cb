package workspaces

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/workspace"
)

func okWorkspace(v *workspace.View) types.WorkspaceResponse {
	return types.WorkspaceResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Workspace:    v,
	}
}

func toPatch(req types.SettingsRequest) workspace.SettingsPatch {
	return workspace.SettingsPatch{
		APIKey:       req.APIKey,
		ModelID:      req.ModelID,
		SpeakerCount: req.SpeakerCount,
	}
}

// Create starts a new workspace
// @Summary      Create workspace
// @Description  Create an editing session; the default model is selected unless modelId is given
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        settings body types.SettingsRequest false "Initial settings"
// @Success      201 {object} types.WorkspaceResponse
// @Failure      400 {object} types.ErrorResponse "Invalid settings"
// @Router       /api/v1/workspaces [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SettingsRequest
		if c.Request.ContentLength != 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		view, err := deps.Workspaces.Create(c.Request.Context(), toPatch(req))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, okWorkspace(view))
	}
}

// Get returns a workspace snapshot
// @Summary      Get workspace
// @Description  Return settings, rows, speakers, the edit cursor and every operation slot
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.WorkspaceResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.Workspaces.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okWorkspace(view))
	}
}

// Delete discards a workspace
// @Summary      Delete workspace
// @Tags         workspaces
// @Param        id path string true "Workspace ID"
// @Success      204
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Workspaces.Delete(c.Request.Context(), c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// UpdateSettings changes the credential, model or speaker-count hint
// @Summary      Update settings
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        settings body types.SettingsRequest true "Settings to change"
// @Success      200 {object} types.WorkspaceResponse
// @Failure      400 {object} types.ErrorResponse "Invalid settings"
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/settings [patch]
func UpdateSettings(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SettingsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		view, err := deps.Workspaces.UpdateSettings(c.Request.Context(), c.Param("id"), toPatch(req))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okWorkspace(view))
	}
}
