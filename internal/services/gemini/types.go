package gemini

// GenerateContentRequest is the body of models/{model}:generateContent
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// Content is one turn of a conversation
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a text or inline binary fragment of a Content
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inline_data,omitempty"`
}

// Blob carries base64-encoded inline media
type Blob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// GenerateContentResponse is the successful response body
type GenerateContentResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate is one generated answer
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// PromptFeedback reports prompt-level blocking
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// errorEnvelope is the body of a non-2xx response
type errorEnvelope struct {
	Error struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Status  string        `json:"status"`
		Details []ErrorDetail `json:"details"`
	} `json:"error"`
}

// ErrorDetail is one google.rpc detail entry. Only QuotaFailure fields are decoded.
type ErrorDetail struct {
	Type       string           `json:"@type"`
	Violations []QuotaViolation `json:"violations,omitempty"`
}

// QuotaViolation is one entry of a google.rpc.QuotaFailure detail
type QuotaViolation struct {
	QuotaMetric     string            `json:"quotaMetric,omitempty"`
	QuotaID         string            `json:"quotaId,omitempty"`
	QuotaDimensions map[string]string `json:"quotaDimensions,omitempty"`
}

// QuotaFailureType is the @type of quota failure details
const QuotaFailureType = "type.googleapis.com/google.rpc.QuotaFailure"
