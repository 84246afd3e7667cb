package transcription

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

const basePrompt = `以下の音声ファイルを文字起こしし、話者ごとに発言を分けてください。
出力形式は以下の例のように、各行を "話者X: 発言内容" の形式にしてください。

例:
話者A: こんにちは。
話者B: 今日は良い天気ですね。
話者A: そうですね、どこかへ出かけたい気分です。`

const speakerCountNote = "\n\n注記: この会話には%d人の話者が参加しています。これを考慮して話者を区別してください。"

var speakerCountRegex = regexp.MustCompile(`^[1-9]\d*$`)

// BuildPrompt returns the transcription instruction. A positive speaker
// count appends a note naming the number of participants.
func BuildPrompt(speakerCount int) string {
	if speakerCount > 0 {
		return basePrompt + fmt.Sprintf(speakerCountNote, speakerCount)
	}
	return basePrompt
}

// ParseSpeakerCount accepts "" (no hint) or a positive integer without sign or leading zeros
func ParseSpeakerCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !speakerCountRegex.MatchString(s) {
		return 0, apperrors.ValidationError("speaker_count", "話者数は1以上の整数で入力してください。")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.ValidationError("speaker_count", "話者数は1以上の整数で入力してください。")
	}
	return n, nil
}
