package gemini

import "context"

// Generator is the outbound surface of the generative API used by the
// transcription and enrichment services
type Generator interface {
	// Transcribe sends audio plus an instruction prompt and returns the raw text answer
	Transcribe(ctx context.Context, apiKey string, audio []byte, mimeType, prompt, modelID string) (string, error)

	// Generate sends a text-only prompt and returns the raw text answer
	Generate(ctx context.Context, apiKey, prompt, modelID string) (string, error)
}
