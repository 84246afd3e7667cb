package types

import "github.com/killallgit/minutes-api/pkg/transcript"

// SettingsRequest updates workspace settings; omitted fields are unchanged
type SettingsRequest struct {
	APIKey       *string `json:"apiKey,omitempty"`
	ModelID      *string `json:"modelId,omitempty" example:"gemini-1.5-pro-latest"`
	SpeakerCount *string `json:"speakerCount,omitempty" example:"3"` // Positive integer, or "" to clear
}

// InsertRowRequest inserts a blank row
type InsertRowRequest struct {
	Index *int `json:"index,omitempty" example:"0"` // Clamped to [0, count]; omitted appends
}

// UpdateRowRequest writes a single cell
type UpdateRowRequest struct {
	Field transcript.Field `json:"field" binding:"required,oneof=speaker text" example:"text"`
	Value string           `json:"value" example:"こんにちは。"`
}

// BeginEditRequest opens the edit cursor
type BeginEditRequest struct {
	RowID string           `json:"rowId" binding:"required"`
	Field transcript.Field `json:"field" binding:"required,oneof=speaker text" example:"speaker"`
}

// EditBufferRequest replaces the in-progress value
type EditBufferRequest struct {
	Value string `json:"value"`
}

// CommitEditRequest commits the cursor; an empty rowId commits whatever is open
type CommitEditRequest struct {
	RowID string `json:"rowId,omitempty"`
}

// RenameRequest sets a pending display name for a default speaker
type RenameRequest struct {
	Name string `json:"name" example:"田中"`
}
