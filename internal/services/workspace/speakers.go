package workspace

import (
	"sort"
	"strings"

	"github.com/killallgit/minutes-api/pkg/transcript"
)

// RenameMap maps a default speaker label to a pending display name.
// An empty pending name means "no change".
type RenameMap map[string]string

// DeriveEditableSpeakers returns the distinct non-empty default speakers, sorted
func DeriveEditableSpeakers(rows []transcript.Utterance) []string {
	seen := make(map[string]struct{})
	speakers := []string{}
	for _, r := range rows {
		if r.DefaultSpeaker == "" {
			continue
		}
		if _, ok := seen[r.DefaultSpeaker]; ok {
			continue
		}
		seen[r.DefaultSpeaker] = struct{}{}
		speakers = append(speakers, r.DefaultSpeaker)
	}
	sort.Strings(speakers)
	return speakers
}

// Sync re-derives the map from rows: keys no longer present are dropped,
// new keys get an empty pending name and existing pending names are kept.
// Callers run it after every collection mutation.
func (m RenameMap) Sync(rows []transcript.Utterance) RenameMap {
	next := make(RenameMap)
	for _, key := range DeriveEditableSpeakers(rows) {
		next[key] = m[key]
	}
	return next
}

// Clone returns a copy of the map
func (m RenameMap) Clone() RenameMap {
	out := make(RenameMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ApplyRenames returns rows with every non-blank pending name copied into
// DisplaySpeaker of the rows sharing that default speaker. Rows without an
// entry, or with a blank one, are unchanged.
func ApplyRenames(rows []transcript.Utterance, renames RenameMap) []transcript.Utterance {
	out := make([]transcript.Utterance, len(rows))
	for i, r := range rows {
		if name := strings.TrimSpace(renames[r.DefaultSpeaker]); name != "" {
			r.DisplaySpeaker = name
		}
		out[i] = r
	}
	return out
}
