package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/cache"
	"github.com/killallgit/minutes-api/internal/services/enrichment"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Config holds workspace lifecycle settings
type Config struct {
	TTL              time.Duration
	CleanupInterval  time.Duration
	MaxWorkspaces    int
	OperationTimeout time.Duration
	MaxAudioBytes    int64

	// DefaultAPIKey is used when a workspace has no credential of its own
	DefaultAPIKey string
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store       *cache.MemoryCache[*Workspace]
	transcriber transcription.Service
	enricher    enrichment.Service
	catalog     models.Catalog
	cfg         Config
	logger      *zap.Logger

	wg    sync.WaitGroup
	newID func() string
	now   func() time.Time
}

// NewService creates a new workspace service
func NewService(transcriber transcription.Service, enricher enrichment.Service, catalog models.Catalog, cfg Config, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 10 * time.Minute
	}

	s := &ServiceImpl{
		transcriber: transcriber,
		enricher:    enricher,
		catalog:     catalog,
		cfg:         cfg,
		logger:      logger,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	s.store = cache.NewMemoryCache(cache.Options[*Workspace]{
		DefaultTTL:      cfg.TTL,
		CleanupInterval: cfg.CleanupInterval,
		MaxEntries:      cfg.MaxWorkspaces,
		OnEvict: func(key string, _ *Workspace) {
			logger.Info("workspace expired", zap.String("workspace_id", key))
		},
	})
	return s
}

func (s *ServiceImpl) lookup(ctx context.Context, id string) (*Workspace, error) {
	w, ok := s.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NotFound("workspace", id)
	}
	return w, nil
}

// Create starts a new workspace with the default model selected
func (s *ServiceImpl) Create(ctx context.Context, patch SettingsPatch) (*View, error) {
	now := s.now()
	w := newWorkspace(s.newID(), Settings{ModelID: s.catalog.Default}, now)
	if err := w.applySettings(patch, s.catalog, now); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, w.id, w, s.cfg.TTL); err != nil {
		return nil, apperrors.Internal("storing workspace", err)
	}
	s.logger.Info("workspace created", zap.String("workspace_id", w.id))
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// Get returns a snapshot of the workspace
func (s *ServiceImpl) Get(ctx context.Context, id string) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// Delete discards the workspace
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.lookup(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// UpdateSettings changes the credential, model or speaker-count hint
func (s *ServiceImpl) UpdateSettings(ctx context.Context, id string, patch SettingsPatch) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := w.applySettings(patch, s.catalog, s.now()); err != nil {
		return nil, err
	}
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// SetAudio replaces the source file and resets every derived result
func (s *ServiceImpl) SetAudio(ctx context.Context, id string, audio Audio) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(audio.Data) == 0 {
		return nil, apperrors.ValidationError("file", "音声ファイルを選択してください。")
	}
	if s.cfg.MaxAudioBytes > 0 && int64(len(audio.Data)) > s.cfg.MaxAudioBytes {
		return nil, apperrors.ValidationError("file", "audio file is too large").
			WithDetail("max_bytes", s.cfg.MaxAudioBytes)
	}
	if err := w.setAudio(&audio, s.now()); err != nil {
		return nil, err
	}
	s.logger.Info("audio set",
		zap.String("workspace_id", id),
		zap.String("filename", audio.Filename),
		zap.String("mime_type", audio.MimeType),
		zap.Int("bytes", len(audio.Data)))
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// ClearAudio removes the source file, resets derived results and the speaker count
func (s *ServiceImpl) ClearAudio(ctx context.Context, id string) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	w.clearAudio(s.now())
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// StartTranscription runs a transcription pass over the current audio
func (s *ServiceImpl) StartTranscription(ctx context.Context, id string, mode RunMode) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	// validation failures are also recorded on the slot
	req, gen, err := w.beginTranscription(s.cfg.DefaultAPIKey, s.now())
	if err != nil {
		return nil, err
	}

	s.run(ctx, mode, func(ctx context.Context) {
		rows, err := s.transcriber.Transcribe(ctx, req)
		if !w.finishTranscription(gen, rows, err, s.now()) {
			s.logger.Info("discarding stale transcription result", zap.String("workspace_id", id))
		}
	})
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// StartEnrichment runs one enrichment over a snapshot of the rows
func (s *ServiceImpl) StartEnrichment(ctx context.Context, id string, kind Kind, mode RunMode) (*View, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	req, gen, err := w.beginEnrichment(kind, s.cfg.DefaultAPIKey, s.now())
	if err != nil {
		return nil, err
	}

	s.run(ctx, mode, func(ctx context.Context) {
		var stored bool
		switch kind {
		case KindSummary:
			summary, err := s.enricher.Summarize(ctx, req)
			stored = w.finishSummary(gen, summary, err, s.now())
		case KindKeywords:
			keywords, err := s.enricher.ExtractKeywords(ctx, req)
			stored = w.finishKeywords(gen, keywords, err, s.now())
		case KindActionItems:
			items, err := s.enricher.ExtractActionItems(ctx, req)
			stored = w.finishActionItems(gen, items, err, s.now())
		}
		if !stored {
			s.logger.Info("discarding stale enrichment result",
				zap.String("workspace_id", id),
				zap.String("kind", string(kind)))
		}
	})
	return w.snapshot(s.catalog, s.cfg.DefaultAPIKey), nil
}

// run executes fn inline or in a tracked goroutine. Background runs use a
// context detached from the request and bounded by the operation timeout.
func (s *ServiceImpl) run(ctx context.Context, mode RunMode, fn func(ctx context.Context)) {
	if mode == RunSync {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
		defer cancel()
		fn(ctx)
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.OperationTimeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		fn(bg)
	}()
}

// Rows returns the current rows in order
func (s *ServiceImpl) Rows(ctx context.Context, id string) ([]transcript.Utterance, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return w.rows(), nil
}

// InsertRow inserts a blank row at index (clamped)
func (s *ServiceImpl) InsertRow(ctx context.Context, id string, index int) (transcript.Utterance, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return transcript.Utterance{}, err
	}
	row, _ := w.insertRow(index, BlankRow(s.newID()), s.now())
	return row, nil
}

// DeleteRow removes a row; deleting an unknown row is a no-op
func (s *ServiceImpl) DeleteRow(ctx context.Context, id, rowID string) error {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	w.deleteRow(rowID, s.now())
	return nil
}

// UpdateRow writes a single cell
func (s *ServiceImpl) UpdateRow(ctx context.Context, id, rowID string, field transcript.Field, value string) (transcript.Utterance, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return transcript.Utterance{}, err
	}
	return w.updateRow(rowID, field, value, s.now())
}

// BeginEdit opens the edit cursor on a cell
func (s *ServiceImpl) BeginEdit(ctx context.Context, id, rowID string, field transcript.Field) (EditCursor, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return EditCursor{}, err
	}
	return w.beginEdit(rowID, field, s.now())
}

// UpdateEditBuffer replaces the in-progress value
func (s *ServiceImpl) UpdateEditBuffer(ctx context.Context, id, value string) (EditCursor, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return EditCursor{}, err
	}
	return w.updateEditBuffer(value, s.now())
}

// CommitEdit writes the buffer into the row
func (s *ServiceImpl) CommitEdit(ctx context.Context, id, rowID string) (*transcript.Utterance, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	row, ok := w.commitEdit(rowID, s.now())
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// CancelEdit discards the buffer
func (s *ServiceImpl) CancelEdit(ctx context.Context, id string) error {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	w.cancelEdit(s.now())
	return nil
}

// Speakers lists the editable default speakers and pending renames
func (s *ServiceImpl) Speakers(ctx context.Context, id string) (SpeakersView, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return SpeakersView{}, err
	}
	return w.speakers(), nil
}

// SetPendingRename stores a pending display name for a default speaker
func (s *ServiceImpl) SetPendingRename(ctx context.Context, id, speaker, name string) (SpeakersView, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return SpeakersView{}, err
	}
	if err := w.setPendingRename(speaker, name, s.now()); err != nil {
		return SpeakersView{}, err
	}
	return w.speakers(), nil
}

// ApplyRenames copies the pending names into the rows
func (s *ServiceImpl) ApplyRenames(ctx context.Context, id string) ([]transcript.Utterance, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return w.applyRenames(s.now()), nil
}

// Export renders the rows for download
func (s *ServiceImpl) Export(ctx context.Context, id string, format transcript.Format) (*Download, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	rows := w.rows()
	if len(rows) == 0 {
		return nil, apperrors.NotFound("transcript", id)
	}

	data, err := transcript.Export(rows, format)
	if err != nil {
		return nil, apperrors.ValidationError("format", err.Error())
	}
	return &Download{
		Filename:    transcript.Filename("transcription", format.Extension(), s.now()),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// SummaryMarkdown returns the summary for download
func (s *ServiceImpl) SummaryMarkdown(ctx context.Context, id string) (*Download, error) {
	w, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, ok := w.summaryText()
	if !ok {
		return nil, apperrors.NotFound("summary", id)
	}
	return &Download{
		Filename:    transcript.Filename("summary", "md", s.now()),
		ContentType: transcript.FormatMarkdown.ContentType(),
		Data:        []byte(summary),
	}, nil
}

// Count returns the number of live workspaces
func (s *ServiceImpl) Count() int {
	return s.store.Len()
}

// StoreStats reports the counters of the workspace store
func (s *ServiceImpl) StoreStats() cache.CacheStats {
	return s.store.Stats()
}

// Wait blocks until background operations have finished
func (s *ServiceImpl) Wait() {
	s.wg.Wait()
}

// Close stops the workspace store
func (s *ServiceImpl) Close() {
	s.store.Stop()
}
