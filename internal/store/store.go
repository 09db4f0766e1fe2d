// Package store defines the persistence capability the question service needs
// and an in-memory implementation of it.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"advisorqa/internal/models"
)

// Domain-level store error sentinels.
var (
	ErrAnswerNotFound    = errors.New("answer not found")
	ErrDuplicateAnswer   = errors.New("answer id already exists")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidTransition = errors.New("question is not pending")
)

// Store persists the answer catalog, the question log and feedback.
// GetAllAnswers returns answers in catalog order.
type Store interface {
	GetAllAnswers(ctx context.Context) ([]models.Answer, error)
	GetAnswer(ctx context.Context, id string) (*models.Answer, error)
	CreateAnswer(ctx context.Context, answer *models.Answer) error

	CreateQuestion(ctx context.Context, q *models.Question) error
	UpdateQuestionStatus(ctx context.Context, q *models.Question) error
	GetQuestionsForReview(ctx context.Context) ([]models.Question, error)
	CountQuestionsByStatus(ctx context.Context) (map[string]int64, error)

	CreateFeedback(ctx context.Context, f *models.Feedback) error
	ListFeedback(ctx context.Context) ([]models.Feedback, error)

	Ping(ctx context.Context) error
	Close()
}

// NewAnswerID returns an id for an answer created without one.
func NewAnswerID() string {
	return "ans-" + uuid.NewString()
}
