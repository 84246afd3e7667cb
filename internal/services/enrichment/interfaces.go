package enrichment

import (
	"context"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Slot names used in diagnostics and the workspace API
const (
	SlotSummary     = "summary"
	SlotKeywords    = "keywords"
	SlotActionItems = "action_items"
)

// Request carries a snapshot of the transcript plus the credentials to use
type Request struct {
	WorkspaceID string
	APIKey      string
	ModelID     string
	Rows        []transcript.Utterance
}

// Service defines the interface for enrichment operations. Every failure
// is an *errors.AppError with a user-facing message.
type Service interface {
	// Summarize returns a Markdown summary of the conversation
	Summarize(ctx context.Context, req Request) (string, error)

	// ExtractKeywords returns the keywords and topics of the conversation
	ExtractKeywords(ctx context.Context, req Request) ([]string, error)

	// ExtractActionItems returns the tasks agreed in the conversation
	ExtractActionItems(ctx context.Context, req Request) ([]models.ActionItem, error)
}
