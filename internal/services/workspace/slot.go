package workspace

import (
	"time"

	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

// State is the lifecycle state of one long-running operation
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Slot holds the result of one operation. Each start bumps the generation;
// a completion carrying an older generation is discarded.
type Slot[T any] struct {
	state      State
	result     T
	err        *apperrors.AppError
	startedAt  *time.Time
	finishedAt *time.Time
	generation uint64
}

// SlotView is the serializable state of a Slot
type SlotView[T any] struct {
	State      State               `json:"state"`
	Result     T                   `json:"result"`
	Error      *apperrors.AppError `json:"error,omitempty"`
	StartedAt  *time.Time          `json:"startedAt,omitempty"`
	FinishedAt *time.Time          `json:"finishedAt,omitempty"`
}

// Running reports whether an operation is in flight
func (s *Slot[T]) Running() bool {
	return s.state == StateRunning
}

// start clears the previous result and error and enters Running
func (s *Slot[T]) start(now time.Time) uint64 {
	var zero T
	s.generation++
	s.state = StateRunning
	s.result = zero
	s.err = nil
	s.startedAt = &now
	s.finishedAt = nil
	return s.generation
}

// finish stores the outcome if gen is still current
func (s *Slot[T]) finish(gen uint64, result T, err error, now time.Time) bool {
	if gen != s.generation || s.state != StateRunning {
		return false
	}
	s.finishedAt = &now
	if err != nil {
		var zero T
		s.state = StateFailed
		s.result = zero
		s.err = toAppError(err)
		return true
	}
	s.state = StateSucceeded
	s.result = result
	return true
}

// fail records an immediate failure without a Running phase
func (s *Slot[T]) fail(err error, now time.Time) {
	var zero T
	s.generation++
	s.state = StateFailed
	s.result = zero
	s.err = toAppError(err)
	s.startedAt = &now
	s.finishedAt = &now
}

// reject marks the slot Failed without running and keeps the previous result
func (s *Slot[T]) reject(err error, now time.Time) {
	s.generation++
	s.state = StateFailed
	s.err = toAppError(err)
	s.startedAt = &now
	s.finishedAt = &now
}

// reset returns the slot to Idle and invalidates any in-flight completion
func (s *Slot[T]) reset() {
	var zero T
	s.generation++
	s.state = StateIdle
	s.result = zero
	s.err = nil
	s.startedAt = nil
	s.finishedAt = nil
}

func (s *Slot[T]) view() SlotView[T] {
	state := s.state
	if state == "" {
		state = StateIdle
	}
	return SlotView[T]{
		State:      state,
		Result:     s.result,
		Error:      s.err,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
	}
}

func toAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	return apperrors.Internal(err.Error(), err)
}
