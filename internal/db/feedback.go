package db

import (
	"context"

	"advisorqa/internal/models"
)

// CreateFeedback records feedback; the database assigns id and timestamp.
func (d *DB) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	if f.Reasons == nil {
		f.Reasons = []string{}
	}

	query := `
		INSERT INTO feedback (answer_id, question_id, sentiment, reasons, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return d.Pool.QueryRow(ctx, query, f.AnswerID, f.QuestionID, f.Sentiment, f.Reasons, f.Comment).
		Scan(&f.ID, &f.CreatedAt)
}

// ListFeedback returns all feedback in the order it was received.
func (d *DB) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, answer_id, question_id, sentiment, reasons, comment, created_at
		FROM feedback
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.AnswerID, &f.QuestionID, &f.Sentiment, &f.Reasons, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
