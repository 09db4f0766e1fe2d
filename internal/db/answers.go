package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"advisorqa/internal/models"
	"advisorqa/internal/store"
)

// answerColumns is the standard column list for answer queries.
const answerColumns = `id, title, content, category, keywords, phrases, answer_type, data, created_at`

// scanAnswer scans a row into an Answer struct.
func scanAnswer(row pgx.Row) (*models.Answer, error) {
	var a models.Answer
	var data []byte
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.Keywords,
		&a.Phrases,
		&a.AnswerType,
		&data,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Data = decodeData(data)
	return &a, nil
}

// GetAllAnswers returns the catalog in insertion order.
func (d *DB) GetAllAnswers(ctx context.Context) ([]models.Answer, error) {
	rows, err := d.Pool.Query(ctx, `SELECT `+answerColumns+` FROM answers ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, *a)
	}
	return answers, rows.Err()
}

// GetAnswer retrieves a single answer by ID.
func (d *DB) GetAnswer(ctx context.Context, id string) (*models.Answer, error) {
	return scanAnswer(d.Pool.QueryRow(ctx, `SELECT `+answerColumns+` FROM answers WHERE id = $1`, id))
}

// CreateAnswer appends an answer to the catalog.
func (d *DB) CreateAnswer(ctx context.Context, a *models.Answer) error {
	if a.ID == "" {
		a.ID = store.NewAnswerID()
	}
	data, err := encodeData(a.Data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO answers (id, title, content, category, keywords, phrases, answer_type, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err = d.Pool.QueryRow(ctx, query,
		a.ID,
		a.Title,
		a.Content,
		a.Category,
		nonNil(a.Keywords),
		nonNil(a.Phrases),
		a.AnswerType,
		data,
	).Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateAnswer
		}
		return err
	}
	return nil
}

// encodeData marshals an answer payload for a JSONB column.
func encodeData(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// decodeData returns stored JSONB untouched so it passes through verbatim.
func decodeData(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
