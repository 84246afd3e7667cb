package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Diagnostic outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Diagnostic records one exchange with the generative API, including the
// raw model response, for troubleshooting. It is never returned to clients
// of the workspace API.
type Diagnostic struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
	WorkspaceID  string         `json:"workspace_id" gorm:"index;size:36"`
	Slot         string         `json:"slot" gorm:"not null;size:32"`
	ModelID      string         `json:"model_id" gorm:"size:128"`
	Outcome      string         `json:"outcome" gorm:"not null;size:16"`
	ErrorCode    string         `json:"error_code,omitempty" gorm:"size:64"`
	ErrorMessage string         `json:"error_message,omitempty" gorm:"type:text"`
	RawResponse  string         `json:"raw_response,omitempty" gorm:"type:text"`
	Metadata     datatypes.JSON `json:"metadata,omitempty"`
}

// BeforeCreate generates a UUID before creating a new diagnostic
func (d *Diagnostic) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Diagnostic model
func (Diagnostic) TableName() string {
	return "diagnostics"
}
