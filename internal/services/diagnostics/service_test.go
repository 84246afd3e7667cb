package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/minutes-api/internal/models"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Diagnostic{}))
	return db
}

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, d *models.Diagnostic) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]models.Diagnostic, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Diagnostic), args.Error(1)
}

func (m *MockRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(setupTestDB(t)), nil)

	svc.Record(ctx, Entry{
		WorkspaceID: "ws-1",
		Slot:        "transcription",
		ModelID:     "gemini-1.5-flash-latest",
		RawResponse: "話者A: こんにちは",
		Metadata:    map[string]any{"rows": 1},
	})
	svc.Record(ctx, Entry{
		WorkspaceID: "ws-1",
		Slot:        "keywords",
		ModelID:     "gemini-1.5-flash-latest",
		Err:         apperrors.New(apperrors.ErrCodeParse, "bad json"),
		RawResponse: "not json",
	})

	list, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)

	bySlot := map[string]models.Diagnostic{}
	for _, d := range list {
		bySlot[d.Slot] = d
	}

	ok := bySlot["transcription"]
	assert.Equal(t, models.OutcomeSuccess, ok.Outcome)
	assert.Equal(t, "話者A: こんにちは", ok.RawResponse)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(ok.Metadata, &meta))
	assert.Equal(t, float64(1), meta["rows"])

	failed := bySlot["keywords"]
	assert.Equal(t, models.OutcomeFailure, failed.Outcome)
	assert.Equal(t, "PARSE", failed.ErrorCode)
	assert.Contains(t, failed.ErrorMessage, "bad json")
}

func TestRecordSwallowsRepositoryErrors(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Diagnostic")).Return(errors.New("disk full"))

	svc := NewService(repo, nil)
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), Entry{Slot: "summary"})
	})
	repo.AssertExpectations(t)
}

func TestListClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRecent", mock.Anything, defaultListLimit).Return([]models.Diagnostic{}, nil).Once()
	repo.On("ListRecent", mock.Anything, maxListLimit).Return([]models.Diagnostic{}, nil).Once()

	svc := NewService(repo, nil)
	_, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), 10000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), nil).(*ServiceImpl)

	old := &models.Diagnostic{Slot: "summary", Outcome: models.OutcomeSuccess}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-48*time.Hour)).Error)
	require.NoError(t, db.Create(&models.Diagnostic{Slot: "keywords", Outcome: models.OutcomeSuccess}).Error)

	n, err := svc.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "keywords", list[0].Slot)

	_, err = svc.Prune(ctx, 0)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NotPanics(t, func() { r.Record(context.Background(), Entry{}) })
}
