package transcription

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	"github.com/killallgit/minutes-api/internal/services/gemini"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// MockGenerator is a mock implementation of gemini.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Transcribe(ctx context.Context, apiKey string, audio []byte, mimeType, prompt, modelID string) (string, error) {
	args := m.Called(ctx, apiKey, audio, mimeType, prompt, modelID)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Generate(ctx context.Context, apiKey, prompt, modelID string) (string, error) {
	args := m.Called(ctx, apiKey, prompt, modelID)
	return args.String(0), args.Error(1)
}

type captureRecorder struct {
	mu      sync.Mutex
	entries []diagnostics.Entry
}

func (r *captureRecorder) Record(_ context.Context, e diagnostics.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

var catalog = models.Catalog{
	Default: "gemini-2.5-pro-exp-03-25",
	Models:  []models.AIModel{{ID: "gemini-1.5-pro-latest", Name: "Gemini 1.5 Pro (Latest)"}},
}

func validRequest() Request {
	return Request{
		WorkspaceID: "ws",
		APIKey:      "key",
		ModelID:     "gemini-1.5-pro-latest",
		Audio:       []byte("audio"),
		MimeType:    "audio/mpeg",
		Filename:    "meeting.mp3",
	}
}

func TestTranscribeParsesResponse(t *testing.T) {
	gen := new(MockGenerator)
	rec := &captureRecorder{}
	svc := NewService(gen, transcript.NewParser(nil), catalog, rec, nil)

	req := validRequest()
	req.SpeakerCount = 2
	gen.On("Transcribe", mock.Anything, "key", []byte("audio"), "audio/mpeg", BuildPrompt(2), "gemini-1.5-pro-latest").
		Return("話者A: こんにちは。\n話者B: 今日は良い天気ですね。\n話者A: そうですね。", nil)

	rows, err := svc.Transcribe(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Speaker-A", rows[2].DefaultSpeaker)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, SlotName, rec.entries[0].Slot)
	assert.NoError(t, rec.entries[0].Err)
	assert.Contains(t, rec.entries[0].RawResponse, "話者B")
	gen.AssertExpectations(t)
}

func TestTranscribeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		message string
	}{
		{"missing key", func(r *Request) { r.APIKey = "" }, msgMissingInput},
		{"missing model", func(r *Request) { r.ModelID = "" }, msgMissingInput},
		{"missing audio", func(r *Request) { r.Audio = nil }, msgMissingInput},
		{"not audio", func(r *Request) { r.MimeType = "video/mp4" }, msgNotAudio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			svc := NewService(gen, transcript.NewParser(nil), catalog, nil, nil)

			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Transcribe(context.Background(), req)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			gen.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTranscribeClassifiesFailures(t *testing.T) {
	gen := new(MockGenerator)
	rec := &captureRecorder{}
	svc := NewService(gen, transcript.NewParser(nil), catalog, rec, nil)

	gen.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", &gemini.APIError{StatusCode: 403, Message: "denied"})

	rows, err := svc.Transcribe(context.Background(), validRequest())
	assert.Nil(t, rows)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeAuth))

	require.Len(t, rec.entries, 1)
	assert.Error(t, rec.entries[0].Err)
}

func TestBuildPrompt(t *testing.T) {
	assert.NotContains(t, BuildPrompt(0), "注記")
	assert.Contains(t, BuildPrompt(0), `"話者X: 発言内容"`)
	assert.Contains(t, BuildPrompt(3), "注記: この会話には3人の話者が参加しています。")
}

func TestParseSpeakerCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{" 4 ", 4, false},
		{"12", 12, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"03", 0, true},
		{"2.5", 0, true},
		{"two", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpeakerCount(tt.in)
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAudio(t *testing.T) {
	assert.NoError(t, ValidateAudio("audio/wav"))
	assert.NoError(t, ValidateAudio("Audio/MP4"))
	assert.Error(t, ValidateAudio("application/octet-stream"))
	assert.Error(t, ValidateAudio(""))
}
