package diagnostics

import (
	"context"
	"time"

	"github.com/killallgit/minutes-api/internal/models"
)

// Entry describes one exchange with the generative API
type Entry struct {
	WorkspaceID string
	Slot        string
	ModelID     string
	Err         error
	RawResponse string
	Metadata    map[string]any
}

// Recorder persists diagnostic entries. Recording never fails the caller.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// Service defines the interface for diagnostics operations
type Service interface {
	Recorder

	// List returns the most recent diagnostics, newest first
	List(ctx context.Context, limit int) ([]models.Diagnostic, error)

	// Prune removes diagnostics older than the given age
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Repository defines the interface for diagnostics persistence
type Repository interface {
	// Create stores a diagnostic
	Create(ctx context.Context, d *models.Diagnostic) error

	// ListRecent returns up to limit diagnostics ordered newest first
	ListRecent(ctx context.Context, limit int) ([]models.Diagnostic, error)

	// DeleteBefore removes diagnostics created before cutoff
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
