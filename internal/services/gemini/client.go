package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBody = 1 << 20

// Config holds configuration for the Gemini client
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

// Client handles communication with the Generative Language API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	maxRetries int
	logger     *zap.Logger

	// initialBackoff is shortened by tests
	initialBackoff time.Duration
}

// NewClient creates a new Gemini API client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "MinutesAPI/1.0"
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		limiter:        rate.NewLimiter(limit, cfg.Burst),
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		initialBackoff: time.Second,
	}
}

// Transcribe sends audio inline together with the prompt
func (c *Client) Transcribe(ctx context.Context, apiKey string, audio []byte, mimeType, prompt, modelID string) (string, error) {
	req := GenerateContentRequest{
		Contents: []Content{{
			Role: "user",
			Parts: []Part{
				{Text: prompt},
				{InlineData: &Blob{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
			},
		}},
	}
	return c.generateContent(ctx, apiKey, modelID, req)
}

// Generate sends a text prompt
func (c *Client) Generate(ctx context.Context, apiKey, prompt, modelID string) (string, error) {
	req := GenerateContentRequest{
		Contents: []Content{{
			Role:  "user",
			Parts: []Part{{Text: prompt}},
		}},
	}
	return c.generateContent(ctx, apiKey, modelID, req)
}

// generateContent posts the request with rate limiting and retries transient failures
func (c *Client) generateContent(ctx context.Context, apiKey, modelID string, body GenerateContentRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(modelID))

	var text string
	attempt := 0
	operation := func() error {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(fmt.Errorf("waiting for rate limiter: %w", err))
		}

		result, err := c.do(ctx, endpoint, apiKey, payload)
		if err != nil {
			if ctx.Err() != nil || !retryable(err) {
				return backoff.Permanent(err)
			}
			c.logger.Warn("gemini request failed, retrying",
				zap.String("model", modelID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		text = result
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	bo.MaxInterval = 10 * c.initialBackoff
	bo.MaxElapsedTime = 0

	var policy backoff.BackOff = bo
	if c.maxRetries >= 0 {
		policy = backoff.WithMaxRetries(bo, uint64(c.maxRetries))
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return "", err
	}

	c.logger.Debug("gemini response received",
		zap.String("model", modelID),
		zap.Int("attempts", attempt),
		zap.Int("length", len(text)))
	return text, nil
}

func (c *Client) do(ctx context.Context, endpoint, apiKey string, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp)
	}

	var out GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Text()
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
		apiErr.Status = env.Error.Status
		apiErr.Details = env.Error.Details
		if env.Error.Code != 0 {
			apiErr.StatusCode = env.Error.Code
		}
	} else if len(bytes.TrimSpace(raw)) > 0 {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

// retryable reports whether err is a transport failure or a 5xx answer
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

var blockedFinishReasons = map[string]bool{
	"SAFETY":             true,
	"RECITATION":         true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
}

// Text concatenates the text parts of the first candidate
func (r *GenerateContentResponse) Text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", &BlockedError{Reason: r.PromptFeedback.BlockReason}
	}
	if len(r.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	cand := r.Candidates[0]
	if blockedFinishReasons[cand.FinishReason] {
		return "", &BlockedError{Reason: cand.FinishReason}
	}

	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
