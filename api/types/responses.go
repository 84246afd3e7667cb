package types

import (
	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/cache"
	"github.com/killallgit/minutes-api/internal/services/workspace"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Status constants for API responses
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusRunning = "running"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp  string                 `json:"timestamp"`
	Workspaces int                    `json:"workspaces"`
	Store      *cache.CacheStats      `json:"store,omitempty"`
	Database   map[string]interface{} `json:"database"`
}

// ModelsResponse lists the selectable models
type ModelsResponse struct {
	BaseResponse
	Default string           `json:"default"`
	Models  []models.AIModel `json:"models"`
}

// WorkspaceResponse wraps a workspace snapshot
type WorkspaceResponse struct {
	BaseResponse
	Workspace *workspace.View `json:"workspace"`
}

// RowsResponse lists transcript rows in order
type RowsResponse struct {
	BaseResponse
	Rows  []transcript.Utterance `json:"rows"`
	Count int                    `json:"count"`
}

// RowResponse wraps a single row
type RowResponse struct {
	BaseResponse
	Row *transcript.Utterance `json:"row"`
}

// EditResponse describes the edit cursor
type EditResponse struct {
	BaseResponse
	Edit *workspace.EditCursor `json:"edit"`
}

// CommitResponse reports whether a commit changed a row
type CommitResponse struct {
	BaseResponse
	Committed bool                  `json:"committed"`
	Row       *transcript.Utterance `json:"row,omitempty"`
}

// SpeakersResponse lists editable speakers and pending renames
type SpeakersResponse struct {
	BaseResponse
	workspace.SpeakersView
}

// SlotResponse reports the state of one long-running operation
type SlotResponse struct {
	BaseResponse
	Slot interface{} `json:"slot"`
}
