package workspaces

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// ListRows returns the transcript rows in order
// @Summary      List rows
// @Tags         rows
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.RowsResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/rows [get]
func ListRows(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := deps.Workspaces.Rows(c.Request.Context(), c.Param("id"))
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

// InsertRow inserts a blank row
// @Summary      Insert row
// @Description  Insert a blank row at index (clamped); without an index the row is appended
// @Tags         rows
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        row body types.InsertRowRequest false "Position"
// @Success      201 {object} types.RowResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/rows [post]
func InsertRow(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.InsertRowRequest
		if c.Request.ContentLength != 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		index := math.MaxInt32
		if req.Index != nil {
			index = *req.Index
		}

		row, err := deps.Workspaces.InsertRow(c.Request.Context(), c.Param("id"), index)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, types.RowResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Row:          &row,
		})
	}
}

// UpdateRow writes a single cell
// @Summary      Update row
// @Description  Write the speaker or text of one row. A blank speaker falls back to the row's default speaker.
// @Tags         rows
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        rowId path string true "Row ID"
// @Param        update body types.UpdateRowRequest true "Field and value"
// @Success      200 {object} types.RowResponse
// @Failure      400 {object} types.ErrorResponse "Invalid field"
// @Failure      404 {object} types.ErrorResponse "Workspace or row not found"
// @Router       /api/v1/workspaces/{id}/rows/{rowId} [patch]
func UpdateRow(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateRowRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		row, err := deps.Workspaces.UpdateRow(c.Request.Context(), c.Param("id"), c.Param("rowId"), req.Field, req.Value)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.RowResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Row:          &row,
		})
	}
}

// DeleteRow removes a row
// @Summary      Delete row
// @Description  Remove a row; deleting an unknown row is a no-op
// @Tags         rows
// @Param        id path string true "Workspace ID"
// @Param        rowId path string true "Row ID"
// @Success      204
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/rows/{rowId} [delete]
func DeleteRow(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Workspaces.DeleteRow(c.Request.Context(), c.Param("id"), c.Param("rowId")); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
