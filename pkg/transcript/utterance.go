package transcript

import "strings"

const (
	// UnknownSpeaker marks lines without a speaker label and empty display names
	UnknownSpeaker = "不明"

	// SystemResponseSpeaker attributes a response that produced no rows
	SystemResponseSpeaker = "システム応答"
)

// Field names an editable column of an Utterance
type Field string

const (
	FieldSpeaker Field = "speaker"
	FieldText    Field = "text"
)

// Valid reports whether f is an editable column
func (f Field) Valid() bool {
	return f == FieldSpeaker || f == FieldText
}

// Utterance is one row of an editable transcript
type Utterance struct {
	ID              string `json:"id"`
	OriginalSpeaker string `json:"originalSpeaker"`
	DefaultSpeaker  string `json:"defaultSpeaker"`
	DisplaySpeaker  string `json:"displaySpeaker"`
	Text            string `json:"text"`
}

// SpeakerLabel returns the display name, or UnknownSpeaker when it is blank
func (u Utterance) SpeakerLabel() string {
	if strings.TrimSpace(u.DisplaySpeaker) == "" {
		return UnknownSpeaker
	}
	return u.DisplaySpeaker
}

// Conversation renders rows as "displaySpeaker: text" lines for prompts.
// Unlike the export formats, a blank display name is sent as is.
func Conversation(rows []Utterance) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r.DisplaySpeaker+": "+r.Text)
	}
	return strings.Join(lines, "\n")
}
