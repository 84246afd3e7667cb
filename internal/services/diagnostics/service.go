package diagnostics

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/killallgit/minutes-api/internal/models"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new diagnostics service
func NewService(repository Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// Record stores the entry; storage failures are logged and swallowed
func (s *ServiceImpl) Record(ctx context.Context, entry Entry) {
	d := &models.Diagnostic{
		WorkspaceID: entry.WorkspaceID,
		Slot:        entry.Slot,
		ModelID:     entry.ModelID,
		Outcome:     models.OutcomeSuccess,
		RawResponse: entry.RawResponse,
	}
	if entry.Err != nil {
		d.Outcome = models.OutcomeFailure
		d.ErrorCode = string(apperrors.GetCode(entry.Err))
		d.ErrorMessage = entry.Err.Error()
		if appErr, ok := apperrors.As(entry.Err); ok {
			d.ErrorMessage = appErr.Message
		}
	}
	if len(entry.Metadata) > 0 {
		if raw, err := json.Marshal(entry.Metadata); err == nil {
			d.Metadata = datatypes.JSON(raw)
		}
	}

	// the request context may already be done for background runs
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.repository.Create(ctx, d); err != nil {
		s.logger.Warn("failed to record diagnostic",
			zap.String("workspace_id", entry.WorkspaceID),
			zap.String("slot", entry.Slot),
			zap.Error(err))
	}
}

// List returns the most recent diagnostics, newest first
func (s *ServiceImpl) List(ctx context.Context, limit int) ([]models.Diagnostic, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repository.ListRecent(ctx, limit)
}

// Prune removes diagnostics older than the given age
func (s *ServiceImpl) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, apperrors.ValidationError("older_than", "retention must be positive")
	}
	n, err := s.repository.DeleteBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	s.logger.Info("pruned diagnostics", zap.Int64("deleted", n), zap.Duration("older_than", olderThan))
	return n, nil
}

// NopRecorder discards entries, used when diagnostics are disabled
type NopRecorder struct{}

// Record implements Recorder
func (NopRecorder) Record(context.Context, Entry) {}
