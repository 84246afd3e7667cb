package diagnostics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/killallgit/minutes-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new diagnostics repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Create stores a diagnostic
func (r *RepositoryImpl) Create(ctx context.Context, d *models.Diagnostic) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("creating diagnostic: %w", err)
	}
	return nil
}

// ListRecent returns up to limit diagnostics ordered newest first
func (r *RepositoryImpl) ListRecent(ctx context.Context, limit int) ([]models.Diagnostic, error) {
	var out []models.Diagnostic
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing diagnostics: %w", err)
	}
	return out, nil
}

// DeleteBefore removes diagnostics created before cutoff
func (r *RepositoryImpl) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.Diagnostic{})
	if result.Error != nil {
		return 0, fmt.Errorf("pruning diagnostics: %w", result.Error)
	}
	return result.RowsAffected, nil
}
