package models

import "github.com/google/uuid"

// Confidence tier constants
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// QuestionRequest is the body of POST /questions.
type QuestionRequest struct {
	Question     string           `json:"question"`
	Context      *QuestionContext `json:"context,omitempty"`
	Placeholders Placeholders     `json:"placeholders,omitempty"`
}

// AnswerPayload is the answer as the dashboard renders it.
type AnswerPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category,omitempty"`
	AnswerType string `json:"answerType,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// QuestionResponse is the body returned by POST /questions.
type QuestionResponse struct {
	ID         uuid.UUID      `json:"id"`
	Status     string         `json:"status"`
	Answer     *AnswerPayload `json:"answer,omitempty"`
	Confidence string         `json:"confidence,omitempty"`
	Message    string         `json:"message,omitempty"`
}

// FallbackData is the payload of a synthesized fallback answer.
type FallbackData struct {
	FallbackType string `json:"fallbackType"`
	IsUnmatched  bool   `json:"isUnmatched"`
	ActionText   string `json:"actionText,omitempty"`
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	AnswerID   string   `json:"answerId"`
	QuestionID string   `json:"questionId,omitempty"`
	Sentiment  string   `json:"sentiment"`
	Reasons    []string `json:"reasons,omitempty"`
	Comment    string   `json:"comment,omitempty"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
