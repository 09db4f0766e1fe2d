package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"advisorqa/internal/models"
)

const questionColumns = `id, question, placeholders, context, status, answer_id, confidence, category, created_at, updated_at`

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	var placeholders, qctx []byte
	err := row.Scan(
		&q.ID,
		&q.Text,
		&placeholders,
		&qctx,
		&q.Status,
		&q.AnswerID,
		&q.Confidence,
		&q.Category,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(placeholders) > 0 {
		if err := json.Unmarshal(placeholders, &q.Placeholders); err != nil {
			return nil, fmt.Errorf("decode placeholders: %w", err)
		}
	}
	if len(qctx) > 0 {
		q.Context = &models.QuestionContext{}
		if err := json.Unmarshal(qctx, q.Context); err != nil {
			return nil, fmt.Errorf("decode context: %w", err)
		}
	}
	return &q, nil
}

// CreateQuestion records an inbound question.
func (d *DB) CreateQuestion(ctx context.Context, q *models.Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = models.QuestionPending
	}

	var placeholders, qctx []byte
	var err error
	if q.Placeholders != nil {
		if placeholders, err = json.Marshal(q.Placeholders); err != nil {
			return err
		}
	}
	if q.Context != nil {
		if qctx, err = json.Marshal(q.Context); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO questions (id, question, placeholders, context, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return d.Pool.QueryRow(ctx, query, q.ID, q.Text, placeholders, qctx, q.Status).
		Scan(&q.CreatedAt, &q.UpdatedAt)
}

// UpdateQuestionStatus moves a pending question into a terminal status.
func (d *DB) UpdateQuestionStatus(ctx context.Context, q *models.Question) error {
	if !models.CanTransition(models.QuestionPending, q.Status) {
		return ErrInvalidTransition
	}

	query := `
		UPDATE questions
		SET status = $2, answer_id = $3, confidence = $4, category = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING updated_at
	`
	err := d.Pool.QueryRow(ctx, query, q.ID, q.Status, q.AnswerID, q.Confidence, q.Category).
		Scan(&q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := d.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM questions WHERE id = $1)`, q.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrQuestionNotFound
		}
		return ErrInvalidTransition
	}
	return err
}

// GetQuestionsForReview returns questions waiting for an advisor, oldest first.
func (d *DB) GetQuestionsForReview(ctx context.Context) ([]models.Question, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE status = 'review'
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// CountQuestionsByStatus returns the number of logged questions per status.
func (d *DB) CountQuestionsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `SELECT status, COUNT(*) FROM questions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
