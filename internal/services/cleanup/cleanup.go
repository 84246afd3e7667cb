package cleanup

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pruner deletes records older than a given age
type Pruner interface {
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Service periodically prunes the diagnostics store
type Service struct {
	pruner          Pruner
	maxAge          time.Duration
	cleanupInterval time.Duration
	logger          *zap.Logger

	cancel context.CancelFunc
	done   sync.WaitGroup
}

// NewService creates a new cleanup service
func NewService(pruner Pruner, maxAge, cleanupInterval time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	return &Service{
		pruner:          pruner,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		logger:          logger,
	}
}

// Start runs one pass immediately, then one per interval until Stop
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.cleanup(ctx)

	s.done.Add(1)
	go func() {
		defer s.done.Done()
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.cleanup(ctx)
			case <-ctx.Done():
				s.logger.Info("cleanup service stopped")
				return
			}
		}
	}()

	s.logger.Info("cleanup service started",
		zap.Duration("interval", s.cleanupInterval),
		zap.Duration("max_age", s.maxAge))
}

// Stop stops the cleanup service and waits for the loop to exit
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.done.Wait()
}

func (s *Service) cleanup(ctx context.Context) {
	n, err := s.pruner.Prune(ctx, s.maxAge)
	if err != nil {
		s.logger.Warn("pruning diagnostics failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Debug("pruned diagnostics", zap.Int64("deleted", n))
	}
}
