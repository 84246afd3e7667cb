package gemini

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the API answers without any candidate text
var ErrEmptyResponse = errors.New("gemini: empty response")

// APIError is a non-2xx answer from the generative API
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Details    []ErrorDetail
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: [%d %s] %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: [%d] %s", e.StatusCode, e.Message)
}

// QuotaViolationForModel reports whether a QuotaFailure detail names modelID
func (e *APIError) QuotaViolationForModel(modelID string) bool {
	for _, d := range e.Details {
		if d.Type != QuotaFailureType {
			continue
		}
		for _, v := range d.Violations {
			if model, ok := v.QuotaDimensions["model"]; ok && model == modelID {
				return true
			}
		}
	}
	return false
}

// BlockedError is returned when the prompt or the candidate was blocked
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("gemini: response was blocked due to %s", e.Reason)
}

// TransportError wraps a failure to reach the API at all
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "gemini: executing request: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
