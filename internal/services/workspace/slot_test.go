package workspace

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

func TestSlotLifecycle(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	var s Slot[string]

	assert.Equal(t, StateIdle, s.view().State)

	gen := s.start(now)
	assert.True(t, s.Running())
	require.True(t, s.finish(gen, "# 要約", nil, now.Add(time.Second)))

	v := s.view()
	assert.Equal(t, StateSucceeded, v.State)
	assert.Equal(t, "# 要約", v.Result)
	assert.Nil(t, v.Error)
	require.NotNil(t, v.FinishedAt)
	assert.Equal(t, now.Add(time.Second), *v.FinishedAt)
}

func TestSlotRestartClearsPreviousResult(t *testing.T) {
	now := time.Now()
	var s Slot[[]string]

	gen := s.start(now)
	s.finish(gen, []string{"予算"}, nil, now)

	s.start(now)
	v := s.view()
	assert.Equal(t, StateRunning, v.State)
	assert.Nil(t, v.Result)
}

func TestSlotDiscardsStaleCompletion(t *testing.T) {
	now := time.Now()
	var s Slot[string]

	first := s.start(now)
	s.reset()
	assert.False(t, s.finish(first, "late", nil, now))
	assert.Equal(t, StateIdle, s.view().State)

	second := s.start(now)
	assert.False(t, s.finish(first, "late", nil, now))
	assert.True(t, s.finish(second, "fresh", nil, now))
	assert.Equal(t, "fresh", s.view().Result)
}

func TestSlotFailureKeepsAppError(t *testing.T) {
	now := time.Now()
	var s Slot[string]

	gen := s.start(now)
	appErr := apperrors.New(apperrors.ErrCodeAuth, "APIキーが無効です。")
	require.True(t, s.finish(gen, "ignored", appErr, now))

	v := s.view()
	assert.Equal(t, StateFailed, v.State)
	assert.Equal(t, "", v.Result)
	assert.Same(t, appErr, v.Error)

	s.fail(errors.New("boom"), now)
	assert.Equal(t, apperrors.ErrCodeInternal, s.view().Error.Code)
}

func TestSlotRejectKeepsPreviousResult(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	var s Slot[string]

	gen := s.start(now)
	require.True(t, s.finish(gen, "## 要約", nil, now))

	s.reject(apperrors.ValidationError("summary", "no rows"), now)
	v := s.view()
	assert.Equal(t, StateFailed, v.State)
	assert.Equal(t, "## 要約", v.Result)
	require.NotNil(t, v.Error)
	assert.Equal(t, apperrors.ErrCodeValidation, v.Error.Code)
	assert.False(t, s.finish(gen, "late", nil, now), "reject invalidates the previous run")
}
