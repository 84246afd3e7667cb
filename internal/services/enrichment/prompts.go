package enrichment

import (
	"github.com/killallgit/minutes-api/pkg/transcript"
)

const fence = "```"

// SummaryPrompt asks for a Markdown summary of the conversation
func SummaryPrompt(rows []transcript.Utterance) string {
	return "以下の会話を簡潔に要約し、見出し、箇条書き、太字などを使用して分かりやすくMarkdown形式で出力してください:\n\n" +
		fence + "\n" + transcript.Conversation(rows) + "\n" + fence
}

// KeywordsPrompt asks for a JSON array of keyword strings
func KeywordsPrompt(rows []transcript.Utterance) string {
	return `以下の会話から重要なキーワードやトピックを抽出し、JSON配列の形式で出力してください。各要素は文字列である必要があります。

例:
` + fence + `json
[
  "決済機能設計(山田、田中)",
  "納期遅延の可能性",
  "追加仕様の確認"
]
` + fence + `

会話:
` + fence + "\n" + transcript.Conversation(rows) + "\n" + fence
}

// ActionItemsPrompt asks for a JSON array of {assignee, task, dueDate} objects
func ActionItemsPrompt(rows []transcript.Utterance) string {
	return `以下の会話からアクションアイテム（担当者、タスク内容、期限）を抽出し、以下のJSON形式の配列で出力してください。該当する情報がない場合は省略するかnullを使用してください。期限はYYYY-MM-DD形式で記述してください。

出力形式:
` + fence + `json
[
  { "assignee": "担当者名", "task": "タスク内容", "dueDate": "YYYY-MM-DD または null" },
  ...
]
` + fence + `

会話:
` + fence + "\n" + transcript.Conversation(rows) + "\n" + fence
}
