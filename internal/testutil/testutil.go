// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"advisorqa/internal/catalog"
	"advisorqa/internal/db"
	"advisorqa/internal/store"
)

// TestStore returns an in-memory store seeded with the default catalog.
func TestStore(t *testing.T) *store.Memory {
	t.Helper()

	st, err := store.NewMemory(catalog.Default())
	if err != nil {
		t.Fatalf("failed to seed memory store: %v", err)
	}
	t.Cleanup(st.Close)
	return st
}

// TestDB connects to TEST_DATABASE_URL, migrates, seeds the default catalog
// and returns a cleanup function. The test is skipped when the variable is
// unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database)
	if err := database.SeedAnswers(ctx, catalog.Default()); err != nil {
		database.Close()
		t.Fatalf("failed to seed answers: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, database *db.DB) {
	database.Pool.Exec(ctx, "DELETE FROM feedback")
	database.Pool.Exec(ctx, "DELETE FROM questions")
	database.Pool.Exec(ctx, "DELETE FROM answers")
}
