package workspace

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/enrichment"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// MockTranscriber is a mock implementation of transcription.Service
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, req transcription.Request) ([]transcript.Utterance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transcript.Utterance), args.Error(1)
}

// MockEnricher is a mock implementation of enrichment.Service
type MockEnricher struct {
	mock.Mock
}

func (m *MockEnricher) Summarize(ctx context.Context, req enrichment.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockEnricher) ExtractKeywords(ctx context.Context, req enrichment.Request) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEnricher) ExtractActionItems(ctx context.Context, req enrichment.Request) ([]models.ActionItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActionItem), args.Error(1)
}

func newTestService(t *testing.T, tr transcription.Service, en enrichment.Service) *ServiceImpl {
	t.Helper()
	svc := NewService(tr, en, testCatalog, Config{
		TTL:              time.Hour,
		CleanupInterval:  time.Minute,
		MaxWorkspaces:    10,
		OperationTimeout: time.Minute,
		MaxAudioBytes:    1024,
	}, nil).(*ServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 30, 15, 0, time.UTC) }
	t.Cleanup(svc.Close)
	return svc
}

func createWithAudio(t *testing.T, svc *ServiceImpl) string {
	t.Helper()
	ctx := context.Background()
	v, err := svc.Create(ctx, SettingsPatch{APIKey: strPtr("key"), SpeakerCount: strPtr("2")})
	require.NoError(t, err)
	_, err = svc.SetAudio(ctx, v.ID, Audio{Data: []byte("audio"), MimeType: "audio/mpeg", Filename: "meeting.mp3"})
	require.NoError(t, err)
	return v.ID
}

func TestCreateUsesDefaultModel(t *testing.T) {
	svc := newTestService(t, new(MockTranscriber), new(MockEnricher))

	v, err := svc.Create(context.Background(), SettingsPatch{})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, testCatalog.Default, v.Settings.ModelID)
	assert.False(t, v.Settings.HasAPIKey)
	assert.Equal(t, StateIdle, v.Transcription.State)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestSetAudioRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t, new(MockTranscriber), new(MockEnricher))
	ctx := context.Background()
	v, err := svc.Create(ctx, SettingsPatch{})
	require.NoError(t, err)

	_, err = svc.SetAudio(ctx, v.ID, Audio{Data: make([]byte, 2048), MimeType: "audio/wav"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = svc.SetAudio(ctx, v.ID, Audio{MimeType: "audio/wav"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestTranscriptionSyncFlow(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	id := createWithAudio(t, svc)

	tr.On("Transcribe", mock.Anything, mock.MatchedBy(func(req transcription.Request) bool {
		return req.WorkspaceID == id && req.APIKey == "key" && req.SpeakerCount == 2 && req.MimeType == "audio/mpeg"
	})).Return(sampleRows(), nil)

	v, err := svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, v.Transcription.State)
	assert.Equal(t, 3, v.Transcription.Result)
	assert.Equal(t, []string{"Speaker-A", "Speaker-B"}, v.Speakers)
	tr.AssertExpectations(t)
}

func TestTranscriptionFailureLeavesEmptyTable(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	id := createWithAudio(t, svc)

	apiErr := apperrors.New(apperrors.ErrCodeQuotaExceeded, "APIの利用上限に達しました。").
		WithDetail("quota_scope", apperrors.QuotaScopeGeneral)
	tr.On("Transcribe", mock.Anything, mock.Anything).Return(nil, apiErr)

	v, err := svc.StartTranscription(context.Background(), id, RunSync)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, v.Transcription.State)
	assert.Equal(t, apperrors.ErrCodeQuotaExceeded, v.Transcription.Error.Code)
	assert.Empty(t, v.Rows)
}

func TestTranscriptionValidationError(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	v, err := svc.Create(ctx, SettingsPatch{APIKey: strPtr("key")})
	require.NoError(t, err)

	_, err = svc.StartTranscription(ctx, v.ID, RunSync)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, got.Transcription.State)
	tr.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

type blockingTranscriber struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingTranscriber) Transcribe(ctx context.Context, _ transcription.Request) ([]transcript.Utterance, error) {
	close(b.started)
	select {
	case <-b.release:
		return sampleRows(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestTranscriptionAsyncRejectsConcurrentRun(t *testing.T) {
	tr := &blockingTranscriber{started: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	id := createWithAudio(t, svc)

	v, err := svc.StartTranscription(ctx, id, RunAsync)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, v.Transcription.State)
	<-tr.started

	_, err = svc.StartTranscription(ctx, id, RunAsync)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))

	close(tr.release)
	svc.Wait()

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, got.Transcription.State)
	assert.Len(t, got.Rows, 3)
}

func TestAsyncRunOutlivesRequestContext(t *testing.T) {
	tr := &blockingTranscriber{started: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(t, tr, new(MockEnricher))
	id := createWithAudio(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.StartTranscription(ctx, id, RunAsync)
	require.NoError(t, err)
	<-tr.started
	cancel()

	close(tr.release)
	svc.Wait()

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, got.Transcription.State)
}

func TestEnrichmentFlows(t *testing.T) {
	tr := new(MockTranscriber)
	en := new(MockEnricher)
	svc := newTestService(t, tr, en)
	ctx := context.Background()
	id := createWithAudio(t, svc)

	tr.On("Transcribe", mock.Anything, mock.Anything).Return(sampleRows(), nil)
	_, err := svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)

	assignee := "田中"
	en.On("Summarize", mock.Anything, mock.Anything).Return("## 要約", nil)
	en.On("ExtractKeywords", mock.Anything, mock.Anything).Return([]string{"天気"}, nil)
	en.On("ExtractActionItems", mock.Anything, mock.Anything).
		Return([]models.ActionItem{{Assignee: &assignee, Task: "資料を送る"}}, nil)

	v, err := svc.StartEnrichment(ctx, id, KindSummary, RunSync)
	require.NoError(t, err)
	assert.Equal(t, "## 要約", v.Summary.Result)

	v, err = svc.StartEnrichment(ctx, id, KindKeywords, RunSync)
	require.NoError(t, err)
	assert.Equal(t, []string{"天気"}, v.Keywords.Result)

	v, err = svc.StartEnrichment(ctx, id, KindActionItems, RunAsync)
	require.NoError(t, err)
	svc.Wait()

	v, err = svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, v.ActionItems.Result, 1)
	assert.Equal(t, "資料を送る", v.ActionItems.Result[0].Task)
	assert.Equal(t, "## 要約", v.Summary.Result, "slots do not clear each other")

	en.AssertNumberOfCalls(t, "Summarize", 1)
	en.AssertExpectations(t)
}

func TestEnrichmentWithoutRowsFailsImmediately(t *testing.T) {
	en := new(MockEnricher)
	svc := newTestService(t, new(MockTranscriber), en)
	ctx := context.Background()
	id := createWithAudio(t, svc)

	for _, kind := range []Kind{KindSummary, KindKeywords, KindActionItems} {
		v, err := svc.StartEnrichment(ctx, id, kind, RunAsync)
		assert.Nil(t, v)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation), string(kind))
	}
	svc.Wait()

	v, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, v.Summary.State)
	require.NotNil(t, v.Summary.Error)
	assert.Equal(t, "要約する文字起こし結果またはAPIキーがありません。", v.Summary.Error.Message)
	assert.NotNil(t, v.Summary.FinishedAt)
	assert.Equal(t, StateFailed, v.Keywords.State)
	assert.Equal(t, StateFailed, v.ActionItems.State)

	en.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	en.AssertNotCalled(t, "ExtractKeywords", mock.Anything, mock.Anything)
	en.AssertNotCalled(t, "ExtractActionItems", mock.Anything, mock.Anything)
}

func TestEnrichmentWithoutKeyKeepsPreviousResult(t *testing.T) {
	tr := new(MockTranscriber)
	en := new(MockEnricher)
	svc := newTestService(t, tr, en)
	ctx := context.Background()
	id := createWithAudio(t, svc)

	tr.On("Transcribe", mock.Anything, mock.Anything).Return(sampleRows(), nil)
	_, err := svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)
	en.On("Summarize", mock.Anything, mock.Anything).Return("## 要約", nil).Once()
	_, err = svc.StartEnrichment(ctx, id, KindSummary, RunSync)
	require.NoError(t, err)

	_, err = svc.UpdateSettings(ctx, id, SettingsPatch{APIKey: strPtr("")})
	require.NoError(t, err)

	_, err = svc.StartEnrichment(ctx, id, KindSummary, RunAsync)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	v, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, v.Summary.State)
	assert.Equal(t, "## 要約", v.Summary.Result)
	en.AssertNumberOfCalls(t, "Summarize", 1)
}

func TestRowIDsStayUniqueAcrossEdits(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	id := createWithAudio(t, svc)
	tr.On("Transcribe", mock.Anything, mock.Anything).Return(sampleRows(), nil)
	_, err := svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)

	insertAt := func(index int) string {
		row, err := svc.InsertRow(ctx, id, index)
		require.NoError(t, err)
		return row.ID
	}
	current := func() []transcript.Utterance {
		rows, err := svc.Rows(ctx, id)
		require.NoError(t, err)
		return rows
	}

	head := insertAt(0)
	insertAt(len(current()))
	insertAt(len(current()) / 2)
	require.NoError(t, svc.DeleteRow(ctx, id, head))
	insertAt(0)
	rows := current()
	require.NoError(t, svc.DeleteRow(ctx, id, rows[len(rows)-1].ID))
	require.NoError(t, svc.DeleteRow(ctx, id, rows[len(rows)/2].ID))
	insertAt(len(current()))
	insertAt(1)

	seen := map[string]bool{}
	for _, row := range current() {
		assert.False(t, seen[row.ID], "duplicate id %s", row.ID)
		seen[row.ID] = true
	}
	assert.Len(t, seen, len(current()))
}

func TestRowEditingThroughService(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	id := createWithAudio(t, svc)
	tr.On("Transcribe", mock.Anything, mock.Anything).Return(sampleRows(), nil)
	_, err := svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)

	inserted, err := svc.InsertRow(ctx, id, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)

	rows, err := svc.Rows(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, rows[1].ID)

	_, err = svc.BeginEdit(ctx, id, inserted.ID, transcript.FieldText)
	require.NoError(t, err)
	_, err = svc.UpdateEditBuffer(ctx, id, "追加した発言")
	require.NoError(t, err)
	committed, err := svc.CommitEdit(ctx, id, inserted.ID)
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, "追加した発言", committed.Text)

	committed, err = svc.CommitEdit(ctx, id, inserted.ID)
	require.NoError(t, err)
	assert.Nil(t, committed)

	require.NoError(t, svc.DeleteRow(ctx, id, inserted.ID))
	require.NoError(t, svc.DeleteRow(ctx, id, inserted.ID))
	rows, err = svc.Rows(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(rows))

	_, err = svc.SetPendingRename(ctx, id, "Speaker-B", "鈴木")
	require.NoError(t, err)
	rows, err = svc.ApplyRenames(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "鈴木", rows[1].DisplaySpeaker)
	assert.Equal(t, "Speaker-A", rows[0].DisplaySpeaker)
}

func TestExport(t *testing.T) {
	tr := new(MockTranscriber)
	svc := newTestService(t, tr, new(MockEnricher))
	ctx := context.Background()
	id := createWithAudio(t, svc)

	_, err := svc.Export(ctx, id, transcript.FormatCSV)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound), "nothing to export yet")

	tr.On("Transcribe", mock.Anything, mock.Anything).Return(sampleRows(), nil)
	_, err = svc.StartTranscription(ctx, id, RunSync)
	require.NoError(t, err)

	dl, err := svc.Export(ctx, id, transcript.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "transcription_20250401_093015.csv", dl.Filename)
	assert.True(t, strings.HasPrefix(string(dl.Data), "\ufeff"))

	dl, err = svc.Export(ctx, id, transcript.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "transcription_20250401_093015.txt", dl.Filename)

	_, err = svc.SummaryMarkdown(ctx, id)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestDeleteWorkspace(t *testing.T) {
	svc := newTestService(t, new(MockTranscriber), new(MockEnricher))
	ctx := context.Background()
	v, err := svc.Create(ctx, SettingsPatch{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, v.ID))
	assert.True(t, apperrors.Is(svc.Delete(ctx, v.ID), apperrors.ErrCodeNotFound))
}
