package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback sentiment constants
const (
	SentimentUp   = "up"
	SentimentDown = "down"
)

// FeedbackReasons lists the reason codes a user can attach to feedback.
var FeedbackReasons = []string{
	"incorrect_data",
	"not_relevant",
	"incomplete",
	"unclear",
	"other",
}

// Feedback records a thumbs up/down against a previously returned answer.
type Feedback struct {
	ID         uuid.UUID  `json:"id"`
	AnswerID   string     `json:"answerId"`
	QuestionID *uuid.UUID `json:"questionId,omitempty"`
	Sentiment  string     `json:"sentiment"`
	Reasons    []string   `json:"reasons"`
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// IsFeedbackReason reports whether r is a known reason code.
func IsFeedbackReason(r string) bool {
	for _, known := range FeedbackReasons {
		if r == known {
			return true
		}
	}
	return false
}
