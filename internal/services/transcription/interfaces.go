package transcription

import (
	"context"

	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Request is everything needed for one transcription pass
type Request struct {
	WorkspaceID  string
	APIKey       string
	ModelID      string
	Audio        []byte
	MimeType     string
	Filename     string
	SpeakerCount int
}

// Service defines the interface for transcription operations
type Service interface {
	// Transcribe sends the audio to the model and parses the answer into rows.
	// Failures are *errors.AppError values of the validation or API kinds.
	Transcribe(ctx context.Context, req Request) ([]transcript.Utterance, error)
}
