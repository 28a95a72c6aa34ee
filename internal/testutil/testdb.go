package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"focuswave/internal/db"
	"focuswave/internal/domain"
	"focuswave/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// SeedUser inserts a user row so that foreign keys on the per-user tables
// are satisfied, and returns its id.
func SeedUser(t *testing.T, database *sql.DB, id string) string {
	t.Helper()
	users := repository.NewSQLiteUserRepo(database)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	err := users.Create(context.Background(), &domain.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: "test-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", id, err)
	}
	return id
}
