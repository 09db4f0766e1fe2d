package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"advisorqa/internal/models"
	"advisorqa/internal/store"
	"advisorqa/migrations"
)

// DB wraps a pgxpool connection pool and implements store.Store.
type DB struct {
	Pool *pgxpool.Pool
}

var _ store.Store = (*DB)(nil)

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedAnswers upserts catalog answers in order. Existing ids take the seed's
// content but keep their original catalog position.
func (d *DB) SeedAnswers(ctx context.Context, answers []models.Answer) error {
	for i := range answers {
		a := answers[i]
		data, err := encodeData(a.Data)
		if err != nil {
			return fmt.Errorf("failed to encode answer %s: %w", a.ID, err)
		}

		_, err = d.Pool.Exec(ctx, `
			INSERT INTO answers (id, title, content, category, keywords, phrases, answer_type, data)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				content = EXCLUDED.content,
				category = EXCLUDED.category,
				keywords = EXCLUDED.keywords,
				phrases = EXCLUDED.phrases,
				answer_type = EXCLUDED.answer_type,
				data = EXCLUDED.data
		`, a.ID, a.Title, a.Content, a.Category, nonNil(a.Keywords), nonNil(a.Phrases), a.AnswerType, data)
		if err != nil {
			return fmt.Errorf("failed to seed answer %s: %w", a.ID, err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
