package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"meeting.mp3", "audio/mpeg"},
		{"MEETING.WAV", "audio/wav"},
		{"voice.m4a", "audio/mp4"},
		{"notes.json", "application/json"},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeTypeFor(tt.filename))
		})
	}
}
