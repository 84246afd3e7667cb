package models

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
)

// Get lists the selectable models
// @Summary      List models
// @Description  List the generative models a workspace can select, with the default
// @Tags         models
// @Produce      json
// @Success      200 {object} types.ModelsResponse
// @Router       /api/v1/models [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.ModelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Default:      deps.Catalog.Default,
			Models:       deps.Catalog.Models,
		})
	}
}
