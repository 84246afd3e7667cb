package transcript

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lineRegex splits "label: content" at the first colon
var lineRegex = regexp.MustCompile(`^(.+?):\s*(.*)$`)

// Parser turns a line-oriented model response into utterances
type Parser struct {
	logger *zap.Logger
	newID  func() string
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithIDGenerator replaces the uuid-based row id source
func WithIDGenerator(fn func() string) ParserOption {
	return func(p *Parser) {
		p.newID = fn
	}
}

// NewParser creates a new response parser
func NewParser(logger *zap.Logger, opts ...ParserOption) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Parser{
		logger: logger,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts raw text into ordered utterances. It never fails: lines
// without a "label:" prefix are kept under UnknownSpeaker.
func (p *Parser) Parse(raw string) []Utterance {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []Utterance{}
	}

	defaults := make(map[string]string)
	rows := []Utterance{}

	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		original, text, ok := splitLine(line)
		if !ok {
			p.logger.Warn("line has no speaker label",
				zap.Int("line", i+1),
				zap.String("content", line))
		}

		def, ok := defaults[original]
		if !ok {
			def = DefaultSpeakerLabel(len(defaults))
			defaults[original] = def
		}

		rows = append(rows, Utterance{
			ID:              p.newID(),
			OriginalSpeaker: original,
			DefaultSpeaker:  def,
			DisplaySpeaker:  def,
			Text:            text,
		})
	}

	if len(rows) == 0 {
		rows = append(rows, Utterance{
			ID:              p.newID(),
			OriginalSpeaker: SystemResponseSpeaker,
			DefaultSpeaker:  SystemResponseSpeaker,
			DisplaySpeaker:  SystemResponseSpeaker,
			Text:            trimmed,
		})
	}

	return rows
}

// splitLine returns the speaker label and content of a trimmed line.
// Both parts must be non-empty, otherwise the whole line is content.
func splitLine(line string) (speaker, text string, ok bool) {
	m := lineRegex.FindStringSubmatch(line)
	if m != nil {
		speaker = strings.TrimSpace(m[1])
		text = strings.TrimSpace(m[2])
		if speaker != "" && text != "" {
			return speaker, text, true
		}
	}
	return UnknownSpeaker, line, false
}
