package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"advisorqa/internal/models"
)

// Field length limits
const (
	MaxQuestionLength = 1000
	MaxCommentLength  = 2000
	MaxTitleLength    = 200
	MaxTokenLength    = 100
)

// Errors collects field-level validation failures.
type Errors []models.FieldError

func (e *Errors) add(field, message string) {
	*e = append(*e, models.FieldError{Field: field, Message: message})
}

// OK returns true if no failures were recorded.
func (e Errors) OK() bool {
	return len(e) == 0
}

// ValidateQuestionRequest checks the shape of a POST /questions body.
func ValidateQuestionRequest(req *models.QuestionRequest) Errors {
	var errs Errors

	q := strings.TrimSpace(req.Question)
	switch {
	case q == "":
		errs.add("question", "Question is required")
	case utf8.RuneCountInString(req.Question) > MaxQuestionLength:
		errs.add("question", "Question must be at most 1000 characters")
	}

	if req.Context != nil {
		switch req.Context.SelectionMode {
		case "", models.SelectionAccounts, models.SelectionGroup:
		default:
			errs.add("context.selectionMode", "Selection mode must be one of: accounts, group")
		}
		for _, acct := range req.Context.Accounts {
			if strings.TrimSpace(acct) == "" {
				errs.add("context.accounts", "Account ids must not be empty")
				break
			}
		}
	}

	for _, p := range req.Placeholders {
		if strings.TrimSpace(p.Key) == "" {
			errs.add("placeholders", "Placeholder names must not be empty")
			break
		}
	}

	return errs
}

// ValidateAnswer checks an answer submitted to the catalog.
func ValidateAnswer(a *models.Answer) Errors {
	var errs Errors

	if a.ID != "" && !ValidateAnswerID(a.ID) {
		errs.add("id", "Id must contain only letters, numbers, hyphens, and underscores")
	}
	if strings.TrimSpace(a.Title) == "" {
		errs.add("title", "Title is required")
	} else if utf8.RuneCountInString(a.Title) > MaxTitleLength {
		errs.add("title", "Title must be at most 200 characters")
	}
	if strings.TrimSpace(a.Content) == "" {
		errs.add("content", "Content is required")
	}
	if len(a.Keywords) == 0 && len(a.Phrases) == 0 {
		errs.add("keywords", "At least one keyword or phrase is required")
	}
	if !validTokens(a.Keywords) {
		errs.add("keywords", "Keywords must be non-empty and at most 100 characters")
	}
	if !validTokens(a.Phrases) {
		errs.add("phrases", "Phrases must be non-empty and at most 100 characters")
	}
	if !models.IsValidAnswerType(a.AnswerType) {
		errs.add("answerType", "Answer type must be one of: text, chart, table, metrics, mixed")
	}

	return errs
}

// ValidateFeedback checks a POST /feedback body and returns the parsed
// question id when one was supplied.
func ValidateFeedback(req *models.FeedbackRequest) (*uuid.UUID, Errors) {
	var errs Errors
	var questionID *uuid.UUID

	if strings.TrimSpace(req.AnswerID) == "" {
		errs.add("answerId", "Answer id is required")
	}
	if req.Sentiment != models.SentimentUp && req.Sentiment != models.SentimentDown {
		errs.add("sentiment", "Sentiment must be one of: up, down")
	}
	for _, r := range req.Reasons {
		if !models.IsFeedbackReason(r) {
			errs.add("reasons", "Unknown reason: "+r)
		}
	}
	if utf8.RuneCountInString(req.Comment) > MaxCommentLength {
		errs.add("comment", "Comment must be at most 2000 characters")
	}
	if req.QuestionID != "" {
		id, err := uuid.Parse(req.QuestionID)
		if err != nil {
			errs.add("questionId", "Question id must be a UUID")
		} else {
			questionID = &id
		}
	}

	return questionID, errs
}

// ValidateAnswerID checks an answer id is safe to use in a URL path.
func ValidateAnswerID(id string) bool {
	if id == "" || len(id) > MaxTokenLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func validTokens(tokens []string) bool {
	for _, t := range tokens {
		if strings.TrimSpace(t) == "" || utf8.RuneCountInString(t) > MaxTokenLength {
			return false
		}
	}
	return true
}
