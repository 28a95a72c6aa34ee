package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"users", "tasks", "mood_logs", "focus_sessions", "gamification_profiles"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_IsRerunnable(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_EnforcesEnumChecks(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ('u1', 'a@b.c', 'x', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO mood_logs (id, user_id, mood, note, created_at)
		VALUES ('m1', 'u1', 'ecstatic', '', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown mood label must be rejected")

	_, err = database.Exec(`INSERT INTO focus_sessions (id, user_id, session_type, duration_seconds, completed_at)
		VALUES ('s1', 'u1', 'nap', 0, '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown session type must be rejected")
}
