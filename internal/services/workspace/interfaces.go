package workspace

import (
	"context"

	"github.com/killallgit/minutes-api/internal/services/cache"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// RunMode selects whether an operation completes before the call returns
type RunMode int

const (
	// RunAsync starts the operation in the background; poll the slot for the outcome
	RunAsync RunMode = iota
	// RunSync waits for the operation to finish
	RunSync
)

// Service defines the interface for workspace operations
type Service interface {
	// Create starts a new workspace with the default model selected
	Create(ctx context.Context, patch SettingsPatch) (*View, error)

	// Get returns a snapshot of the workspace
	Get(ctx context.Context, id string) (*View, error)

	// Delete discards the workspace
	Delete(ctx context.Context, id string) error

	// UpdateSettings changes the credential, model or speaker-count hint
	UpdateSettings(ctx context.Context, id string, patch SettingsPatch) (*View, error)

	// SetAudio replaces the source file and resets every derived result
	SetAudio(ctx context.Context, id string, audio Audio) (*View, error)

	// ClearAudio removes the source file, resets derived results and the speaker count
	ClearAudio(ctx context.Context, id string) (*View, error)

	// StartTranscription runs a transcription pass over the current audio
	StartTranscription(ctx context.Context, id string, mode RunMode) (*View, error)

	// StartEnrichment runs one enrichment over a snapshot of the rows
	StartEnrichment(ctx context.Context, id string, kind Kind, mode RunMode) (*View, error)

	// Rows returns the current rows in order
	Rows(ctx context.Context, id string) ([]transcript.Utterance, error)

	// InsertRow inserts a blank row at index (clamped)
	InsertRow(ctx context.Context, id string, index int) (transcript.Utterance, error)

	// DeleteRow removes a row; deleting an unknown row is a no-op
	DeleteRow(ctx context.Context, id, rowID string) error

	// UpdateRow writes a single cell
	UpdateRow(ctx context.Context, id, rowID string, field transcript.Field, value string) (transcript.Utterance, error)

	// BeginEdit opens the edit cursor on a cell
	BeginEdit(ctx context.Context, id, rowID string, field transcript.Field) (EditCursor, error)

	// UpdateEditBuffer replaces the in-progress value
	UpdateEditBuffer(ctx context.Context, id, value string) (EditCursor, error)

	// CommitEdit writes the buffer into the row; nil when nothing was committed
	CommitEdit(ctx context.Context, id, rowID string) (*transcript.Utterance, error)

	// CancelEdit discards the buffer
	CancelEdit(ctx context.Context, id string) error

	// Speakers lists the editable default speakers and pending renames
	Speakers(ctx context.Context, id string) (SpeakersView, error)

	// SetPendingRename stores a pending display name for a default speaker
	SetPendingRename(ctx context.Context, id, speaker, name string) (SpeakersView, error)

	// ApplyRenames copies the pending names into the rows
	ApplyRenames(ctx context.Context, id string) ([]transcript.Utterance, error)

	// Export renders the rows for download
	Export(ctx context.Context, id string, format transcript.Format) (*Download, error)

	// SummaryMarkdown returns the summary for download
	SummaryMarkdown(ctx context.Context, id string) (*Download, error)

	// Count returns the number of live workspaces
	Count() int

	// StoreStats reports hit, miss and eviction counters of the workspace store
	StoreStats() cache.CacheStats

	// Wait blocks until background operations have finished
	Wait()

	// Close stops the workspace store
	Close()
}

// Download is a rendered file
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}
