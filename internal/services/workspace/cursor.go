package workspace

import "github.com/killallgit/minutes-api/pkg/transcript"

// EditCursor is the single cell currently in inline-edit mode
type EditCursor struct {
	RowID  string           `json:"rowId"`
	Field  transcript.Field `json:"field"`
	Buffer string           `json:"buffer"`
}

// currentValue returns the value a new cursor on field starts from
func currentValue(row transcript.Utterance, field transcript.Field) string {
	if field == transcript.FieldSpeaker {
		return row.DisplaySpeaker
	}
	return row.Text
}
