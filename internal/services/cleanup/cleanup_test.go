package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPruner struct {
	calls atomic.Int32
	age   atomic.Int64
	err   error
}

func (p *countingPruner) Prune(_ context.Context, olderThan time.Duration) (int64, error) {
	p.calls.Add(1)
	p.age.Store(int64(olderThan))
	return 1, p.err
}

func TestStartRunsImmediatelyAndPeriodically(t *testing.T) {
	p := &countingPruner{}
	svc := NewService(p, 24*time.Hour, 10*time.Millisecond, nil)

	svc.Start(context.Background())
	assert.Equal(t, int32(1), p.calls.Load())

	assert.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	svc.Stop()

	assert.Equal(t, int64(24*time.Hour), p.age.Load())
}

func TestStopEndsLoop(t *testing.T) {
	p := &countingPruner{err: errors.New("database is locked")}
	svc := NewService(p, time.Hour, 5*time.Millisecond, nil)

	svc.Start(context.Background())
	svc.Stop()
	after := p.calls.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, p.calls.Load())
}

func TestStopWithoutStart(t *testing.T) {
	svc := NewService(&countingPruner{}, time.Hour, 0, nil)
	assert.NotPanics(t, svc.Stop)
}
