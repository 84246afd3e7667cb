package workspaces

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/workspace"
)

func runMode(c *gin.Context) workspace.RunMode {
	if types.ParseBoolQuery(c, "wait") {
		return workspace.RunSync
	}
	return workspace.RunAsync
}

// sendSlot answers a start request: 200 when it ran inline, 202 otherwise
func sendSlot(c *gin.Context, mode workspace.RunMode, slot interface{}, running bool) {
	resp := types.SlotResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Slot:         slot,
	}
	if mode == workspace.RunAsync && running {
		resp.Status = types.StatusRunning
		types.SendAccepted(c, resp)
		return
	}
	types.SendSuccess(c, resp)
}

// StartTranscription transcribes the current audio
// @Summary      Start transcription
// @Description  Send the audio to the selected model and parse the answer into rows. Runs in the background unless wait=true.
// @Tags         transcription
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        wait query bool false "Run synchronously"
// @Success      200 {object} types.SlotResponse "Finished (wait=true)"
// @Success      202 {object} types.SlotResponse "Running"
// @Failure      400 {object} types.ErrorResponse "Missing credential, model or audio"
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Failure      409 {object} types.ErrorResponse "Already running"
// @Router       /api/v1/workspaces/{id}/transcription [post]
func StartTranscription(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := runMode(c)
		view, err := deps.Workspaces.StartTranscription(c.Request.Context(), c.Param("id"), mode)
		if err != nil {
			types.SendError(c, err)
			return
		}
		sendSlot(c, mode, view.Transcription, view.Transcription.State == workspace.StateRunning)
	}
}

// GetTranscription reports the transcription state
// @Summary      Transcription state
// @Tags         transcription
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.SlotResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/transcription [get]
func GetTranscription(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.Workspaces.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		sendSlot(c, workspace.RunSync, view.Transcription, false)
	}
}

func slotOf(view *workspace.View, kind workspace.Kind) (interface{}, bool) {
	switch kind {
	case workspace.KindSummary:
		return view.Summary, view.Summary.State == workspace.StateRunning
	case workspace.KindKeywords:
		return view.Keywords, view.Keywords.State == workspace.StateRunning
	default:
		return view.ActionItems, view.ActionItems.State == workspace.StateRunning
	}
}

// StartEnrichment runs summary, keyword or action-item extraction
// @Summary      Start enrichment
// @Description  Run one enrichment over a snapshot of the rows. Runs in the background unless wait=true.
// @Tags         enrichment
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        wait query bool false "Run synchronously"
// @Success      200 {object} types.SlotResponse "Finished (wait=true)"
// @Success      202 {object} types.SlotResponse "Running"
// @Failure      400 {object} types.ErrorResponse "No rows or no credential"
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Failure      409 {object} types.ErrorResponse "Already running"
// @Router       /api/v1/workspaces/{id}/summary [post]
// @Router       /api/v1/workspaces/{id}/keywords [post]
// @Router       /api/v1/workspaces/{id}/action-items [post]
func StartEnrichment(deps *types.Dependencies, name string) gin.HandlerFunc {
	kind, err := workspace.ParseKind(name)
	if err != nil {
		panic(err)
	}
	return func(c *gin.Context) {
		mode := runMode(c)
		view, err := deps.Workspaces.StartEnrichment(c.Request.Context(), c.Param("id"), kind, mode)
		if err != nil {
			types.SendError(c, err)
			return
		}
		slot, running := slotOf(view, kind)
		sendSlot(c, mode, slot, running)
	}
}

// GetEnrichment reports one enrichment slot
// @Summary      Enrichment state
// @Tags         enrichment
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200 {object} types.SlotResponse
// @Failure      404 {object} types.ErrorResponse "Workspace not found"
// @Router       /api/v1/workspaces/{id}/summary [get]
// @Router       /api/v1/workspaces/{id}/keywords [get]
// @Router       /api/v1/workspaces/{id}/action-items [get]
func GetEnrichment(deps *types.Dependencies, name string) gin.HandlerFunc {
	kind, err := workspace.ParseKind(name)
	if err != nil {
		panic(err)
	}
	return func(c *gin.Context) {
		view, err := deps.Workspaces.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		slot, _ := slotOf(view, kind)
		sendSlot(c, workspace.RunSync, slot, false)
	}
}
