package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"advisorqa/internal/models"
)

// Memory is a Store held in process memory. Readers get copies, so callers
// may keep results without holding the lock.
type Memory struct {
	mu        sync.RWMutex
	answers   []models.Answer
	answerIdx map[string]int
	questions map[uuid.UUID]*models.Question
	asked     []uuid.UUID
	feedback  []models.Feedback
}

var _ Store = (*Memory)(nil)

// NewMemory creates an in-memory store seeded with the given catalog.
// Seed answers with duplicate ids are rejected.
func NewMemory(seed []models.Answer) (*Memory, error) {
	m := &Memory{
		answerIdx: make(map[string]int),
		questions: make(map[uuid.UUID]*models.Question),
	}
	for i := range seed {
		a := seed[i]
		if err := m.CreateAnswer(context.Background(), &a); err != nil {
			return nil, fmt.Errorf("seed answer %s: %w", a.ID, err)
		}
	}
	return m, nil
}

// GetAllAnswers returns the catalog in insertion order.
func (m *Memory) GetAllAnswers(ctx context.Context) ([]models.Answer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Answer, len(m.answers))
	for i := range m.answers {
		out[i] = cloneAnswer(m.answers[i])
	}
	return out, nil
}

// GetAnswer returns a single answer by id.
func (m *Memory) GetAnswer(ctx context.Context, id string) (*models.Answer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.answerIdx[id]
	if !ok {
		return nil, ErrAnswerNotFound
	}
	a := cloneAnswer(m.answers[i])
	return &a, nil
}

// CreateAnswer appends an answer to the catalog. An empty id is generated.
func (m *Memory) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if answer.ID == "" {
		answer.ID = NewAnswerID()
	}
	if _, exists := m.answerIdx[answer.ID]; exists {
		return ErrDuplicateAnswer
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}

	m.answerIdx[answer.ID] = len(m.answers)
	m.answers = append(m.answers, cloneAnswer(*answer))
	return nil
}

// CreateQuestion records an inbound question. Status defaults to pending.
func (m *Memory) CreateQuestion(ctx context.Context, q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = models.QuestionPending
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, exists := m.questions[q.ID]; !exists {
		m.asked = append(m.asked, q.ID)
	}
	stored := *q
	m.questions[q.ID] = &stored
	return nil
}

// UpdateQuestionStatus moves a pending question to q.Status and records the
// answer, confidence and category alongside it.
func (m *Memory) UpdateQuestionStatus(ctx context.Context, q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.questions[q.ID]
	if !ok {
		return ErrQuestionNotFound
	}
	if !models.CanTransition(stored.Status, q.Status) {
		return ErrInvalidTransition
	}

	stored.Status = q.Status
	stored.AnswerID = q.AnswerID
	stored.Confidence = q.Confidence
	stored.Category = q.Category
	stored.UpdatedAt = time.Now().UTC()
	q.UpdatedAt = stored.UpdatedAt
	return nil
}

// GetQuestionsForReview returns questions waiting for an advisor, oldest first.
func (m *Memory) GetQuestionsForReview(ctx context.Context) ([]models.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Question
	for _, id := range m.asked {
		if q := m.questions[id]; q.NeedsReview() {
			out = append(out, *q)
		}
	}
	return out, nil
}

// CountQuestionsByStatus returns the number of logged questions per status.
func (m *Memory) CountQuestionsByStatus(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, q := range m.questions {
		counts[q.Status]++
	}
	return counts, nil
}

// CreateFeedback records feedback with a server-assigned id and timestamp.
func (m *Memory) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f.ID = uuid.New()
	f.CreatedAt = time.Now().UTC()
	if f.Reasons == nil {
		f.Reasons = []string{}
	}

	stored := *f
	stored.Reasons = append([]string(nil), f.Reasons...)
	m.feedback = append(m.feedback, stored)
	return nil
}

// ListFeedback returns all feedback in the order it was received.
func (m *Memory) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Feedback, len(m.feedback))
	copy(out, m.feedback)
	return out, nil
}

// Ping always succeeds.
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (m *Memory) Close() {}

func cloneAnswer(a models.Answer) models.Answer {
	a.Keywords = append([]string(nil), a.Keywords...)
	a.Phrases = append([]string(nil), a.Phrases...)
	return a
}
