package models

// ActionItem is one task extracted from a conversation.
// DueDate is a YYYY-MM-DD string passed through as received.
type ActionItem struct {
	Assignee *string `json:"assignee"`
	Task     string  `json:"task"`
	DueDate  *string `json:"dueDate"`
}
