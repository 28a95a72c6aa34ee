package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are additive and
// re-runnable; "duplicate column name" errors from ALTER TABLE are
// tolerated since the runner replays the full list on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		tag         TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high')),
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','completed')),
		due_date    TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS mood_logs (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		mood       TEXT NOT NULL
		           CHECK(mood IN ('happy','calm','tired','anxious','sad','neutral')),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_logs_user ON mood_logs(user_id)`,

	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		session_type     TEXT NOT NULL
		                 CHECK(session_type IN ('work','break')),
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		completed_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_user ON focus_sessions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_completed ON focus_sessions(user_id, completed_at)`,

	`CREATE TABLE IF NOT EXISTS gamification_profiles (
		user_id            TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		points             INTEGER NOT NULL DEFAULT 0,
		total_points       INTEGER NOT NULL DEFAULT 0,
		streak             INTEGER NOT NULL DEFAULT 0,
		last_activity_date TEXT NOT NULL DEFAULT '',
		unlocked_badges    TEXT NOT NULL DEFAULT '[]',
		updated_at         TEXT NOT NULL
	)`,
}
