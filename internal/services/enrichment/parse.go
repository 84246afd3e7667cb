package enrichment

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/killallgit/minutes-api/internal/models"
)

var (
	// a whole response wrapped in one markdown or unlabeled fence
	summaryFenceRegex = regexp.MustCompile("(?s)^```(?:markdown)?\\s*(.*?)\\s*```$")

	// the first ```json block anywhere in the response
	jsonFenceRegex = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
)

var (
	errKeywordsShape    = errors.New("API応答が期待されたJSON配列(文字列)形式ではありません。")
	errActionItemsShape = errors.New("API応答が期待されたJSON形式ではありません。")
)

// UnwrapSummary strips a single fence enclosing the entire trimmed response
func UnwrapSummary(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := summaryFenceRegex.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// extractJSON returns the body of the first ```json block, or the whole text
func extractJSON(text string) string {
	if m := jsonFenceRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// ParseKeywords decodes a JSON array of strings, trimming each and dropping blanks
func ParseKeywords(text string) ([]string, error) {
	var decoded any
	if err := json.Unmarshal([]byte(extractJSON(text)), &decoded); err != nil {
		return nil, err
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, errKeywordsShape
	}

	keywords := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errKeywordsShape
		}
		if s = strings.TrimSpace(s); s != "" {
			keywords = append(keywords, s)
		}
	}
	return keywords, nil
}

// ParseActionItems decodes a JSON array of action item objects. The first
// element must carry both "assignee" and "task" keys; values may be null.
func ParseActionItems(text string) ([]models.ActionItem, error) {
	var decoded any
	if err := json.Unmarshal([]byte(extractJSON(text)), &decoded); err != nil {
		return nil, err
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, errActionItemsShape
	}

	out := make([]models.ActionItem, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errActionItemsShape
		}
		if i == 0 {
			_, hasAssignee := obj["assignee"]
			_, hasTask := obj["task"]
			if !hasAssignee || !hasTask {
				return nil, errActionItemsShape
			}
		}

		ai := models.ActionItem{
			Assignee: optionalString(obj["assignee"]),
		}
		if task := optionalString(obj["task"]); task != nil {
			ai.Task = *task
		}
		if due := optionalString(obj["dueDate"]); due != nil && *due != "" {
			ai.DueDate = due
		}
		out = append(out, ai)
	}
	return out, nil
}

// optionalString maps null/absent to nil and scalars to their text form
func optionalString(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return &t
	default:
		s := fmt.Sprint(t)
		return &s
	}
}
