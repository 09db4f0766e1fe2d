package models

import "time"

// Answer type constants describe which presentation the dashboard uses.
const (
	AnswerTypeText    = "text"
	AnswerTypeChart   = "chart"
	AnswerTypeTable   = "table"
	AnswerTypeMetrics = "metrics"
	AnswerTypeMixed   = "mixed"
)

// Answer is a pre-authored catalog entry that questions are matched against.
// Keywords and Phrases keep their stored casing; the matcher lower-cases them.
type Answer struct {
	ID         string    `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Category   string    `json:"category,omitempty" yaml:"category,omitempty"`
	Keywords   []string  `json:"keywords" yaml:"keywords"`
	Phrases    []string  `json:"phrases" yaml:"phrases"`
	AnswerType string    `json:"answerType,omitempty" yaml:"answerType,omitempty"`
	Data       any       `json:"data,omitempty" yaml:"data,omitempty"`
	CreatedAt  time.Time `json:"createdAt" yaml:"-"`
}

// Payload returns the wire view of the answer, without match tokens.
func (a *Answer) Payload() *AnswerPayload {
	return &AnswerPayload{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Category:   a.Category,
		AnswerType: a.AnswerType,
		Data:       a.Data,
	}
}

// IsValidAnswerType reports whether t is empty or a known presentation.
func IsValidAnswerType(t string) bool {
	switch t {
	case "", AnswerTypeText, AnswerTypeChart, AnswerTypeTable, AnswerTypeMetrics, AnswerTypeMixed:
		return true
	}
	return false
}
