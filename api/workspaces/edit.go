package workspaces

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/workspace"
)

func okEdit(cur workspace.EditCursor) types.EditResponse {
	return types.EditResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Edit:         &cur,
	}
}

// BeginEdit opens the edit cursor on a cell
// @Summary      Begin edit
// @Description  Open the single edit cursor on a cell; an open cursor is replaced
// @Tags         edit
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        edit body types.BeginEditRequest true "Cell"
// @Success      200 {object} types.EditResponse
// @Failure      404 {object} types.ErrorResponse "Workspace or row not found"
// @Router       /api/v1/workspaces/{id}/edit [put]
func BeginEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BeginEditRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		cur, err := deps.Workspaces.BeginEdit(c.Request.Context(), c.Param("id"), req.RowID, req.Field)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okEdit(cur))
	}
}

// UpdateEditBuffer replaces the in-progress value
// @Summary      Update edit buffer
// @Tags         edit
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        edit body types.EditBufferRequest true "Value"
// @Success      200 {object} types.EditResponse
// @Failure      404 {object} types.ErrorResponse "No open cursor"
// @Router       /api/v1/workspaces/{id}/edit [patch]
func UpdateEditBuffer(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.EditBufferRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		cur, err := deps.Workspaces.UpdateEditBuffer(c.Request.Context(), c.Param("id"), req.Value)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, okEdit(cur))
	}
}

// CancelEdit discards the buffer
// @Summary      Cancel edit
// @Tags         edit
// @Param        id path string true "Workspace ID"
// @Success      204
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/edit [delete]
func CancelEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Workspaces.CancelEdit(c.Request.Context(), c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// CommitEdit writes the buffer into the row
// @Summary      Commit edit
// @Description  Write the buffer into its row. Committing when the row was deleted, or for another row, changes nothing.
// @Tags         edit
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        commit body types.CommitEditRequest false "Row the client believes is being edited"
// @Success      200 {object} types.CommitResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/edit/commit [post]
func CommitEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CommitEditRequest
		if c.Request.ContentLength != 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		row, err := deps.Workspaces.CommitEdit(c.Request.Context(), c.Param("id"), req.RowID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.CommitResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Committed:    row != nil,
			Row:          row,
		})
	}
}
