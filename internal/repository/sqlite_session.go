package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focuswave/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (id, user_id, session_type, duration_seconds, completed_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		string(s.SessionType),
		s.DurationSeconds,
		s.CompletedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, userID, id string) (*domain.FocusSession, error) {
	query := `SELECT id, user_id, session_type, duration_seconds, completed_at
		FROM focus_sessions WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)

	var s domain.FocusSession
	var sessionType, completedAtStr string
	if err := row.Scan(&s.ID, &s.UserID, &sessionType, &s.DurationSeconds, &completedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("focus session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}
	return r.populateSession(&s, sessionType, completedAtStr)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.FocusSession, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, user_id, session_type, duration_seconds, completed_at
		FROM focus_sessions WHERE user_id = ?
		ORDER BY completed_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.FocusSession
	for rows.Next() {
		var s domain.FocusSession
		var sessionType, completedAtStr string
		if err := rows.Scan(&s.ID, &s.UserID, &sessionType, &s.DurationSeconds, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scanning focus session row: %w", err)
		}
		session, parseErr := r.populateSession(&s, sessionType, completedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}

// FocusMinutesByDay sums work-session minutes per UTC calendar day.
// Days with no sessions are absent from the map; callers zero-fill.
func (r *SQLiteSessionRepo) FocusMinutesByDay(ctx context.Context, userID string, since time.Time) (map[string]float64, error) {
	query := `SELECT date(completed_at), SUM(duration_seconds) / 60.0
		FROM focus_sessions
		WHERE user_id = ? AND session_type = 'work' AND completed_at >= ?
		GROUP BY date(completed_at)`
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("summing focus minutes by day: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var day string
		var minutes float64
		if err := rows.Scan(&day, &minutes); err != nil {
			return nil, fmt.Errorf("scanning focus minutes row: %w", err)
		}
		out[day] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus minutes rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteSessionRepo) populateSession(s *domain.FocusSession, sessionType, completedAtStr string) (*domain.FocusSession, error) {
	s.SessionType = domain.SessionType(sessionType)
	var parseErr error
	s.CompletedAt, parseErr = time.Parse(time.RFC3339, completedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", parseErr)
	}
	return s, nil
}
