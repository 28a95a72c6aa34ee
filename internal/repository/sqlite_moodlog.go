package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focuswave/internal/domain"
)

// SQLiteMoodLogRepo implements MoodLogRepo using a SQLite database.
type SQLiteMoodLogRepo struct {
	db *sql.DB
}

// NewSQLiteMoodLogRepo creates a new SQLiteMoodLogRepo.
func NewSQLiteMoodLogRepo(db *sql.DB) *SQLiteMoodLogRepo {
	return &SQLiteMoodLogRepo{db: db}
}

func (r *SQLiteMoodLogRepo) Create(ctx context.Context, m *domain.MoodLog) error {
	query := `INSERT INTO mood_logs (id, user_id, mood, note, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		string(m.Mood),
		m.Note,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting mood log: %w", err)
	}
	return nil
}

func (r *SQLiteMoodLogRepo) GetByID(ctx context.Context, userID, id string) (*domain.MoodLog, error) {
	query := `SELECT id, user_id, mood, note, created_at FROM mood_logs WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)

	var m domain.MoodLog
	var mood, createdAtStr string
	if err := row.Scan(&m.ID, &m.UserID, &mood, &m.Note, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mood log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mood log: %w", err)
	}
	return r.populateMoodLog(&m, mood, createdAtStr)
}

func (r *SQLiteMoodLogRepo) ListByUser(ctx context.Context, userID string) ([]*domain.MoodLog, error) {
	query := `SELECT id, user_id, mood, note, created_at FROM mood_logs
		WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing mood logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.MoodLog
	for rows.Next() {
		var m domain.MoodLog
		var mood, createdAtStr string
		if err := rows.Scan(&m.ID, &m.UserID, &mood, &m.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning mood log row: %w", err)
		}
		log, parseErr := r.populateMoodLog(&m, mood, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteMoodLogRepo) Update(ctx context.Context, m *domain.MoodLog) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE mood_logs SET mood = ?, note = ? WHERE user_id = ? AND id = ?`,
		string(m.Mood), m.Note, m.UserID, m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating mood log: %w", err)
	}
	return requireRowAffected(res, "mood log")
}

func (r *SQLiteMoodLogRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_logs WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting mood log: %w", err)
	}
	return requireRowAffected(res, "mood log")
}

// AggregateMoodFocus joins mood logs to work sessions completed on the same
// UTC calendar day and aggregates focus statistics per mood label.
func (r *SQLiteMoodLogRepo) AggregateMoodFocus(ctx context.Context, userID string, since time.Time) ([]MoodFocusAgg, error) {
	query := `SELECT
			ml.mood,
			COALESCE(AVG(fs.duration_seconds / 60.0), 0),
			COALESCE(MAX(fs.duration_seconds / 60.0), 0),
			COALESCE(MIN(fs.duration_seconds / 60.0), 0),
			COUNT(DISTINCT date(ml.created_at)),
			COUNT(DISTINCT fs.id),
			COALESCE(SUM(fs.duration_seconds / 60.0), 0)
		FROM mood_logs ml
		LEFT JOIN focus_sessions fs ON date(ml.created_at) = date(fs.completed_at)
			AND fs.user_id = ml.user_id
			AND fs.session_type = 'work'
		WHERE ml.user_id = ? AND ml.created_at >= ?
		GROUP BY ml.mood
		ORDER BY 2 DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("aggregating mood focus: %w", err)
	}
	defer rows.Close()

	var out []MoodFocusAgg
	for rows.Next() {
		var agg MoodFocusAgg
		var mood string
		if err := rows.Scan(
			&mood,
			&agg.AvgFocusMinutes,
			&agg.MaxFocusMinutes,
			&agg.MinFocusMinutes,
			&agg.MoodDays,
			&agg.FocusSessions,
			&agg.TotalFocusMinutes,
		); err != nil {
			return nil, fmt.Errorf("scanning mood focus row: %w", err)
		}
		agg.Mood = domain.Mood(mood)
		out = append(out, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood focus rows: %w", err)
	}
	return out, nil
}

// DailyMoodFocus returns the per-day mood/focus breakdown behind the
// aggregated correlation.
func (r *SQLiteMoodLogRepo) DailyMoodFocus(ctx context.Context, userID string, since time.Time) ([]MoodFocusDaily, error) {
	query := `SELECT
			date(ml.created_at),
			ml.mood,
			COALESCE(SUM(fs.duration_seconds / 60.0), 0),
			COUNT(fs.id)
		FROM mood_logs ml
		LEFT JOIN focus_sessions fs ON date(ml.created_at) = date(fs.completed_at)
			AND fs.user_id = ml.user_id
			AND fs.session_type = 'work'
		WHERE ml.user_id = ? AND ml.created_at >= ?
		GROUP BY date(ml.created_at), ml.mood
		ORDER BY 1 DESC, ml.mood`
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing daily mood focus: %w", err)
	}
	defer rows.Close()

	var out []MoodFocusDaily
	for rows.Next() {
		var d MoodFocusDaily
		var mood string
		if err := rows.Scan(&d.Date, &mood, &d.FocusMinutes, &d.SessionCount); err != nil {
			return nil, fmt.Errorf("scanning daily mood focus row: %w", err)
		}
		d.Mood = domain.Mood(mood)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily mood focus rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteMoodLogRepo) populateMoodLog(m *domain.MoodLog, mood, createdAtStr string) (*domain.MoodLog, error) {
	m.Mood = domain.Mood(mood)
	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return m, nil
}
