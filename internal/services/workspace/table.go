package workspace

import (
	"strings"

	"github.com/killallgit/minutes-api/pkg/transcript"
)

// Table is the ordered, editable list of utterances. Row order is the only
// ordering signal.
type Table struct {
	rows []transcript.Utterance
}

// Rows returns a copy of the rows
func (t *Table) Rows() []transcript.Utterance {
	out := make([]transcript.Utterance, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Index returns the position of the row with id, or -1
func (t *Table) Index(id string) int {
	for i, r := range t.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the row with id
func (t *Table) Get(id string) (transcript.Utterance, bool) {
	if i := t.Index(id); i >= 0 {
		return t.rows[i], true
	}
	return transcript.Utterance{}, false
}

// ReplaceAll resets the collection to rows
func (t *Table) ReplaceAll(rows []transcript.Utterance) {
	t.rows = make([]transcript.Utterance, len(rows))
	copy(t.rows, rows)
}

// InsertAt inserts row at index clamped to [0, Len] and returns the position used
func (t *Table) InsertAt(index int, row transcript.Utterance) int {
	if index < 0 {
		index = 0
	}
	if index > len(t.rows) {
		index = len(t.rows)
	}
	t.rows = append(t.rows, transcript.Utterance{})
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = row
	return index
}

// DeleteByID removes the row with id; it reports whether a row was removed
func (t *Table) DeleteByID(id string) bool {
	i := t.Index(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

// UpdateField writes value into a row. Speaker values are trimmed and fall
// back to the row's default speaker, then UnknownSpeaker; text is stored verbatim.
func (t *Table) UpdateField(id string, field transcript.Field, value string) (transcript.Utterance, bool) {
	i := t.Index(id)
	if i < 0 || !field.Valid() {
		return transcript.Utterance{}, false
	}

	row := &t.rows[i]
	switch field {
	case transcript.FieldSpeaker:
		name := strings.TrimSpace(value)
		if name == "" {
			name = row.DefaultSpeaker
		}
		if name == "" {
			name = transcript.UnknownSpeaker
		}
		row.DisplaySpeaker = name
	case transcript.FieldText:
		row.Text = value
	}
	return *row, true
}

// BlankRow returns a manually created row with every field empty
func BlankRow(id string) transcript.Utterance {
	return transcript.Utterance{ID: id}
}
