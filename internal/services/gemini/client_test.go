package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(Config{BaseURL: server.URL, MaxRetries: maxRetries, Timeout: 5 * time.Second}, nil)
	c.initialBackoff = time.Millisecond
	return c
}

func writeText(w http.ResponseWriter, parts ...string) {
	resp := GenerateContentResponse{Candidates: []Candidate{{Content: Content{Role: "model"}}}}
	for _, p := range parts {
		resp.Candidates[0].Content.Parts = append(resp.Candidates[0].Content.Parts, Part{Text: p})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestTranscribeSendsInlineAudio(t *testing.T) {
	var got GenerateContentRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeText(w, "話者A: ", "こんにちは")
	}, 0)

	text, err := c.Transcribe(context.Background(), "secret", []byte("RIFF"), "audio/wav", "prompt", "gemini-1.5-flash-latest")
	require.NoError(t, err)
	assert.Equal(t, "話者A: こんにちは", text)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Equal(t, "prompt", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "audio/wav", got.Contents[0].Parts[1].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("RIFF")), got.Contents[0].Parts[1].InlineData.Data)
}

func TestGenerateDecodesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"You exceeded your current quota","status":"RESOURCE_EXHAUSTED",
			"details":[{"@type":"type.googleapis.com/google.rpc.QuotaFailure","violations":[{"quotaMetric":"m","quotaDimensions":{"model":"gemini-1.5-pro-latest","location":"global"}}]}]}}`))
	}, 3)

	_, err := c.Generate(context.Background(), "k", "p", "gemini-1.5-pro-latest")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "RESOURCE_EXHAUSTED", apiErr.Status)
	assert.True(t, apiErr.QuotaViolationForModel("gemini-1.5-pro-latest"))
	assert.False(t, apiErr.QuotaViolationForModel("gemini-1.5-flash-latest"))
}

func TestQuotaViolationForModelNeedsModelDimension(t *testing.T) {
	apiErr := &APIError{
		StatusCode: 429,
		Details: []ErrorDetail{{
			Type:       QuotaFailureType,
			Violations: []QuotaViolation{{QuotaMetric: "m", QuotaDimensions: map[string]string{"location": "global"}}},
		}},
	}

	assert.False(t, apiErr.QuotaViolationForModel(""))
	assert.False(t, apiErr.QuotaViolationForModel("gemini-1.5-pro-latest"))
}

func TestGenerateRetriesServerErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
			return
		}
		writeText(w, "ok")
	}, 3)

	text, err := c.Generate(context.Background(), "k", "p", "m")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`))
	}, 3)

	_, err := c.Generate(context.Background(), "bad", "p", "m")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 2)

	_, err := c.Generate(context.Background(), "k", "p", "m")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    GenerateContentResponse
		want    string
		blocked string
		empty   bool
	}{
		{
			name: "concatenates parts",
			resp: GenerateContentResponse{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "a"}, {Text: "b"}}}}}},
			want: "ab",
		},
		{
			name:    "prompt blocked",
			resp:    GenerateContentResponse{PromptFeedback: &PromptFeedback{BlockReason: "SAFETY"}},
			blocked: "SAFETY",
		},
		{
			name:    "candidate stopped for safety",
			resp:    GenerateContentResponse{Candidates: []Candidate{{FinishReason: "SAFETY"}}},
			blocked: "SAFETY",
		},
		{
			name:  "no candidates",
			resp:  GenerateContentResponse{},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.resp.Text()
			switch {
			case tt.blocked != "":
				var blocked *BlockedError
				require.True(t, errors.As(err, &blocked))
				assert.Equal(t, tt.blocked, blocked.Reason)
				assert.Contains(t, err.Error(), "SAFETY")
			case tt.empty:
				assert.ErrorIs(t, err, ErrEmptyResponse)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&APIError{StatusCode: 502}))
	assert.False(t, retryable(&APIError{StatusCode: 404}))
	assert.True(t, retryable(&TransportError{Err: errors.New("connection refused")}))
	assert.False(t, retryable(&BlockedError{Reason: "SAFETY"}))
	assert.False(t, retryable(ErrEmptyResponse))
}
