package workspace

import (
	"sync"
	"time"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/enrichment"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Kind selects one of the three enrichment slots
type Kind string

const (
	KindSummary     Kind = enrichment.SlotSummary
	KindKeywords    Kind = enrichment.SlotKeywords
	KindActionItems Kind = enrichment.SlotActionItems
)

// ParseKind accepts the slot names and their URL forms
func ParseKind(s string) (Kind, error) {
	switch s {
	case "summary":
		return KindSummary, nil
	case "keywords":
		return KindKeywords, nil
	case "action_items", "action-items":
		return KindActionItems, nil
	default:
		return "", apperrors.ValidationError("kind", "unknown enrichment kind: "+s)
	}
}

// Audio is the uploaded source file
type Audio struct {
	Data     []byte
	MimeType string
	Filename string
}

// Settings are the per-workspace request parameters
type Settings struct {
	APIKey       string
	ModelID      string
	SpeakerCount int
}

// SettingsPatch updates settings; nil fields are left unchanged
type SettingsPatch struct {
	APIKey       *string `json:"apiKey,omitempty"`
	ModelID      *string `json:"modelId,omitempty"`
	SpeakerCount *string `json:"speakerCount,omitempty"`
}

// Workspace is the state of one editing session. All access goes through
// its mutex.
type Workspace struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	updatedAt time.Time

	settings Settings
	audio    *Audio

	table   Table
	renames RenameMap
	cursor  *EditCursor

	transcription Slot[int]
	summary       Slot[string]
	keywords      Slot[[]string]
	actionItems   Slot[[]models.ActionItem]
}

func newWorkspace(id string, settings Settings, now time.Time) *Workspace {
	return &Workspace{
		id:        id,
		createdAt: now,
		updatedAt: now,
		settings:  settings,
		renames:   RenameMap{},
	}
}

// ID returns the workspace id
func (w *Workspace) ID() string {
	return w.id
}

// syncLocked re-derives the rename map after a collection mutation
func (w *Workspace) syncLocked(now time.Time) {
	w.renames = w.renames.Sync(w.table.rows)
	w.updatedAt = now
}

// resetDerivedLocked clears rows, renames, the edit cursor and every enrichment
func (w *Workspace) resetDerivedLocked(now time.Time) {
	w.table.ReplaceAll(nil)
	w.renames = RenameMap{}
	w.cursor = nil
	w.summary.reset()
	w.keywords.reset()
	w.actionItems.reset()
	w.updatedAt = now
}

func (w *Workspace) applySettings(patch SettingsPatch, catalog models.Catalog, now time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.settings
	if patch.APIKey != nil {
		next.APIKey = *patch.APIKey
	}
	if patch.ModelID != nil {
		if _, ok := catalog.Lookup(*patch.ModelID); !ok {
			return apperrors.ValidationError("modelId", "選択されたモデルは利用できません。").
				WithDetail("model", *patch.ModelID)
		}
		next.ModelID = *patch.ModelID
	}
	if patch.SpeakerCount != nil {
		n, err := transcription.ParseSpeakerCount(*patch.SpeakerCount)
		if err != nil {
			return err
		}
		next.SpeakerCount = n
	}
	w.settings = next
	w.updatedAt = now
	return nil
}

func (w *Workspace) setAudio(audio *Audio, now time.Time) error {
	if err := transcription.ValidateAudio(audio.MimeType); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.audio = audio
	w.resetDerivedLocked(now)
	w.transcription.reset()
	return nil
}

func (w *Workspace) clearAudio(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.audio = nil
	w.settings.SpeakerCount = 0
	w.resetDerivedLocked(now)
	w.transcription.reset()
}

// beginTranscription validates the inputs and enters Running. A validation
// failure marks the slot Failed and leaves the rows untouched.
func (w *Workspace) beginTranscription(defaultKey string, now time.Time) (transcription.Request, uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.transcription.Running() {
		return transcription.Request{}, 0, apperrors.New(apperrors.ErrCodeConflict, "transcription is already running")
	}

	req := transcription.Request{
		WorkspaceID:  w.id,
		APIKey:       effectiveKey(w.settings.APIKey, defaultKey),
		ModelID:      w.settings.ModelID,
		SpeakerCount: w.settings.SpeakerCount,
	}
	if w.audio != nil {
		req.Audio = w.audio.Data
		req.MimeType = w.audio.MimeType
		req.Filename = w.audio.Filename
	}

	if req.APIKey == "" || req.ModelID == "" || len(req.Audio) == 0 {
		err := apperrors.ValidationError("request", "APIキー、モデル、音声ファイルを選択してください。")
		w.transcription.fail(err, now)
		return transcription.Request{}, 0, err
	}

	w.resetDerivedLocked(now)
	gen := w.transcription.start(now)
	return req, gen, nil
}

// finishTranscription stores parsed rows; failures leave the table empty
func (w *Workspace) finishTranscription(gen uint64, rows []transcript.Utterance, err error, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.transcription.finish(gen, len(rows), err, now) {
		return false
	}
	if err == nil {
		w.table.ReplaceAll(rows)
		w.cursor = nil
	}
	w.syncLocked(now)
	return true
}

// beginEnrichment enters Running and snapshots the rows by value. Missing
// rows or credential mark the slot Failed at once and keep its previous result.
func (w *Workspace) beginEnrichment(kind Kind, defaultKey string, now time.Time) (enrichment.Request, uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	req := enrichment.Request{
		WorkspaceID: w.id,
		APIKey:      effectiveKey(w.settings.APIKey, defaultKey),
		ModelID:     w.settings.ModelID,
		Rows:        w.table.Rows(),
	}
	precondition := enrichment.CheckPreconditions(string(kind), len(req.Rows), req.APIKey)

	var gen uint64
	switch kind {
	case KindSummary:
		if w.summary.Running() {
			return req, 0, apperrors.New(apperrors.ErrCodeConflict, "summary is already running")
		}
		if precondition != nil {
			w.summary.reject(precondition, now)
			return req, 0, precondition
		}
		gen = w.summary.start(now)
	case KindKeywords:
		if w.keywords.Running() {
			return req, 0, apperrors.New(apperrors.ErrCodeConflict, "keyword extraction is already running")
		}
		if precondition != nil {
			w.keywords.reject(precondition, now)
			return req, 0, precondition
		}
		gen = w.keywords.start(now)
	case KindActionItems:
		if w.actionItems.Running() {
			return req, 0, apperrors.New(apperrors.ErrCodeConflict, "action item extraction is already running")
		}
		if precondition != nil {
			w.actionItems.reject(precondition, now)
			return req, 0, precondition
		}
		gen = w.actionItems.start(now)
	default:
		return req, 0, apperrors.ValidationError("kind", "unknown enrichment kind: "+string(kind))
	}
	w.updatedAt = now
	return req, gen, nil
}

func (w *Workspace) finishSummary(gen uint64, summary string, err error, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.summary.finish(gen, summary, err, now)
}

func (w *Workspace) finishKeywords(gen uint64, keywords []string, err error, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keywords.finish(gen, keywords, err, now)
}

func (w *Workspace) finishActionItems(gen uint64, items []models.ActionItem, err error, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.actionItems.finish(gen, items, err, now)
}

func (w *Workspace) rows() []transcript.Utterance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.table.Rows()
}

func (w *Workspace) insertRow(index int, row transcript.Utterance, now time.Time) (transcript.Utterance, int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pos := w.table.InsertAt(index, row)
	w.syncLocked(now)
	return row, pos
}

func (w *Workspace) deleteRow(id string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.table.DeleteByID(id) {
		return false
	}
	if w.cursor != nil && w.cursor.RowID == id {
		w.cursor = nil
	}
	w.syncLocked(now)
	return true
}

func (w *Workspace) updateRow(id string, field transcript.Field, value string, now time.Time) (transcript.Utterance, error) {
	if !field.Valid() {
		return transcript.Utterance{}, apperrors.ValidationError("field", "field must be speaker or text")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	row, ok := w.table.UpdateField(id, field, value)
	if !ok {
		return transcript.Utterance{}, apperrors.NotFound("row", id)
	}
	w.syncLocked(now)
	return row, nil
}

// beginEdit opens the cursor on a cell, replacing any open cursor
func (w *Workspace) beginEdit(id string, field transcript.Field, now time.Time) (EditCursor, error) {
	if !field.Valid() {
		return EditCursor{}, apperrors.ValidationError("field", "field must be speaker or text")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	row, ok := w.table.Get(id)
	if !ok {
		return EditCursor{}, apperrors.NotFound("row", id)
	}
	w.cursor = &EditCursor{RowID: id, Field: field, Buffer: currentValue(row, field)}
	w.updatedAt = now
	return *w.cursor, nil
}

func (w *Workspace) updateEditBuffer(value string, now time.Time) (EditCursor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cursor == nil {
		return EditCursor{}, apperrors.NotFound("edit", "cursor")
	}
	w.cursor.Buffer = value
	w.updatedAt = now
	return *w.cursor, nil
}

// commitEdit writes the buffer into the row. It is a no-op when no cursor
// is open, when rowID names another row, or when the row no longer exists.
func (w *Workspace) commitEdit(rowID string, now time.Time) (transcript.Utterance, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cursor == nil {
		return transcript.Utterance{}, false
	}
	if rowID != "" && rowID != w.cursor.RowID {
		return transcript.Utterance{}, false
	}

	cur := *w.cursor
	w.cursor = nil
	row, ok := w.table.UpdateField(cur.RowID, cur.Field, cur.Buffer)
	if !ok {
		return transcript.Utterance{}, false
	}
	w.syncLocked(now)
	return row, true
}

func (w *Workspace) cancelEdit(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cursor = nil
	w.updatedAt = now
}

func (w *Workspace) setPendingRename(speaker, name string, now time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.renames[speaker]; !ok {
		return apperrors.NotFound("speaker", speaker)
	}
	w.renames[speaker] = name
	w.updatedAt = now
	return nil
}

func (w *Workspace) applyRenames(now time.Time) []transcript.Utterance {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.table.ReplaceAll(ApplyRenames(w.table.rows, w.renames))
	w.syncLocked(now)
	return w.table.Rows()
}

func (w *Workspace) summaryText() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.summary.state != StateSucceeded || w.summary.result == "" {
		return "", false
	}
	return w.summary.result, true
}

func effectiveKey(key, fallback string) string {
	if key != "" {
		return key
	}
	return fallback
}
