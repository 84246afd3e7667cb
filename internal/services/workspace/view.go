package workspace

import (
	"time"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// View is a point-in-time copy of a workspace, safe to serialize
type View struct {
	ID             string                        `json:"id"`
	CreatedAt      time.Time                     `json:"createdAt"`
	UpdatedAt      time.Time                     `json:"updatedAt"`
	Settings       SettingsView                  `json:"settings"`
	Audio          *AudioView                    `json:"audio,omitempty"`
	Rows           []transcript.Utterance        `json:"rows"`
	Speakers       []string                      `json:"speakers"`
	PendingRenames map[string]string             `json:"pendingRenames"`
	Edit           *EditCursor                   `json:"edit,omitempty"`
	Transcription  SlotView[int]                 `json:"transcription"`
	Summary        SlotView[string]              `json:"summary"`
	Keywords       SlotView[[]string]            `json:"keywords"`
	ActionItems    SlotView[[]models.ActionItem] `json:"actionItems"`
}

// SettingsView never exposes the credential itself
type SettingsView struct {
	HasAPIKey    bool   `json:"hasApiKey"`
	ModelID      string `json:"modelId"`
	ModelName    string `json:"modelName"`
	SpeakerCount int    `json:"speakerCount,omitempty"`
}

// AudioView describes the uploaded file without its bytes
type AudioView struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
}

// SpeakersView lists the editable speakers and their pending names
type SpeakersView struct {
	Speakers       []string          `json:"speakers"`
	PendingRenames map[string]string `json:"pendingRenames"`
}

func (w *Workspace) snapshot(catalog models.Catalog, defaultKey string) *View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := &View{
		ID:        w.id,
		CreatedAt: w.createdAt,
		UpdatedAt: w.updatedAt,
		Settings: SettingsView{
			HasAPIKey:    effectiveKey(w.settings.APIKey, defaultKey) != "",
			ModelID:      w.settings.ModelID,
			ModelName:    catalog.DisplayName(w.settings.ModelID),
			SpeakerCount: w.settings.SpeakerCount,
		},
		Rows:           w.table.Rows(),
		Speakers:       DeriveEditableSpeakers(w.table.rows),
		PendingRenames: w.renames.Clone(),
		Transcription:  w.transcription.view(),
		Summary:        w.summary.view(),
		Keywords:       w.keywords.view(),
		ActionItems:    w.actionItems.view(),
	}
	if w.audio != nil {
		v.Audio = &AudioView{
			Filename: w.audio.Filename,
			MimeType: w.audio.MimeType,
			Size:     len(w.audio.Data),
		}
	}
	if w.cursor != nil {
		cur := *w.cursor
		v.Edit = &cur
	}
	return v
}

func (w *Workspace) speakers() SpeakersView {
	w.mu.Lock()
	defer w.mu.Unlock()

	return SpeakersView{
		Speakers:       DeriveEditableSpeakers(w.table.rows),
		PendingRenames: w.renames.Clone(),
	}
}
