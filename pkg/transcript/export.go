package transcript

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Format is a transcript download format
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

const utf8BOM = "\ufeff"

// ParseFormat accepts the format names and their file extensions
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// Extension returns the file extension without a dot
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// ContentType returns the MIME type used for downloads
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Export renders rows in the given format
func Export(rows []Utterance, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ToCSV(rows)
	case FormatMarkdown:
		return []byte(ToMarkdown(rows)), nil
	case FormatText:
		return []byte(ToText(rows)), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ToCSV renders a BOM-prefixed, CRLF-terminated CSV with every field quoted
func ToCSV(rows []Utterance) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"話者", "発言内容"})
	for _, r := range rows {
		records = append(records, []string{r.SpeakerLabel(), r.Text})
	}

	// every field is quoted, which encoding/csv cannot be told to do
	for i, rec := range records {
		if i > 0 {
			buf.WriteString("\r\n")
		}
		for j, field := range rec {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quoteField(field))
		}
	}
	return buf.Bytes(), nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ToMarkdown renders "**speaker:** text" paragraphs
func ToMarkdown(rows []Utterance) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("**%s:** %s", r.SpeakerLabel(), r.Text))
	}
	return strings.Join(parts, "\n\n")
}

// ToText renders "speaker: text" paragraphs
func ToText(rows []Utterance) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("%s: %s", r.SpeakerLabel(), r.Text))
	}
	return strings.Join(parts, "\n\n")
}

// Filename returns "<prefix>_YYYYMMDD_HHMMSS.<ext>"
func Filename(prefix, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, at.Format("20060102_150405"), ext)
}
