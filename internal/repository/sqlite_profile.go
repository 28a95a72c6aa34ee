package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"focuswave/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// It also satisfies gamification.ProfileStore.
type SQLiteProfileRepo struct {
	db *sql.DB
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db *sql.DB) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) GetProfile(ctx context.Context, userID string) (*domain.GamificationProfile, error) {
	query := `SELECT user_id, points, total_points, streak, last_activity_date, unlocked_badges
		FROM gamification_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.GamificationProfile
	var badgesJSON string
	err := row.Scan(&p.UserID, &p.Points, &p.TotalPoints, &p.Streak, &p.LastActivityDate, &badgesJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gamification profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning gamification profile: %w", err)
	}

	if err := json.Unmarshal([]byte(badgesJSON), &p.UnlockedBadges); err != nil {
		return nil, fmt.Errorf("decoding unlocked badges: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) UpsertProfile(ctx context.Context, p *domain.GamificationProfile) error {
	badges := p.UnlockedBadges
	if badges == nil {
		badges = []string{}
	}
	badgesJSON, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("encoding unlocked badges: %w", err)
	}

	query := `INSERT INTO gamification_profiles (user_id, points, total_points, streak, last_activity_date, unlocked_badges, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			points = excluded.points,
			total_points = excluded.total_points,
			streak = excluded.streak,
			last_activity_date = excluded.last_activity_date,
			unlocked_badges = excluded.unlocked_badges,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID,
		p.Points,
		p.TotalPoints,
		p.Streak,
		p.LastActivityDate,
		string(badgesJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting gamification profile: %w", err)
	}
	return nil
}
