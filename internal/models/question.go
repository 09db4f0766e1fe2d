package models

import (
	"time"

	"github.com/google/uuid"
)

// Question status constants
const (
	QuestionPending = "pending"
	QuestionMatched = "matched"
	QuestionReview  = "review"
	QuestionNoMatch = "no_match"
)

// Selection mode constants
const (
	SelectionAccounts = "accounts"
	SelectionGroup    = "group"
)

// QuestionContext describes the accounts the question is about.
type QuestionContext struct {
	Accounts      []string `json:"accounts,omitempty"`
	Timeframe     string   `json:"timeframe,omitempty"`
	SelectionMode string   `json:"selectionMode,omitempty"`
}

// Question is the persisted log entry for an inbound question.
// Text is always the raw question as submitted, before placeholder substitution.
type Question struct {
	ID           uuid.UUID        `json:"id"`
	Text         string           `json:"question"`
	Placeholders Placeholders     `json:"placeholders,omitempty"`
	Context      *QuestionContext `json:"context,omitempty"`
	Status       string           `json:"status"`
	AnswerID     *string          `json:"answerId,omitempty"`
	Confidence   string           `json:"confidence,omitempty"`
	Category     string           `json:"category,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// IsPending returns true if the question has not been resolved yet.
func (q *Question) IsPending() bool {
	return q.Status == QuestionPending
}

// NeedsReview returns true if the question is waiting for an advisor.
func (q *Question) NeedsReview() bool {
	return q.Status == QuestionReview
}

// CanTransition reports whether a question may move from one status to another.
// Only pending questions move, and only into a terminal status.
func CanTransition(from, to string) bool {
	if from != QuestionPending {
		return false
	}
	switch to {
	case QuestionMatched, QuestionReview, QuestionNoMatch:
		return true
	}
	return false
}
