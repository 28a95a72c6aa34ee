package repository

import (
	"context"
	"time"

	"focuswave/internal/domain"
)

// MoodFocusAgg is one per-mood row of the mood-vs-focus correlation:
// focus-session statistics joined to mood logs by calendar day.
type MoodFocusAgg struct {
	Mood              domain.Mood
	AvgFocusMinutes   float64
	MaxFocusMinutes   float64
	MinFocusMinutes   float64
	MoodDays          int
	FocusSessions     int
	TotalFocusMinutes float64
}

// MoodFocusDaily is one day/mood point of the correlation breakdown.
type MoodFocusDaily struct {
	Date         string
	Mood         domain.Mood
	FocusMinutes float64
	SessionCount int
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
	Reorder(ctx context.Context, userID string, orderedIDs []string) error
	CreatedCountByDay(ctx context.Context, userID string, since time.Time) (map[string]int, error)
	CompletedCountByDay(ctx context.Context, userID string, since time.Time) (map[string]int, error)
}

type MoodLogRepo interface {
	Create(ctx context.Context, m *domain.MoodLog) error
	GetByID(ctx context.Context, userID, id string) (*domain.MoodLog, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.MoodLog, error)
	Update(ctx context.Context, m *domain.MoodLog) error
	Delete(ctx context.Context, userID, id string) error
	AggregateMoodFocus(ctx context.Context, userID string, since time.Time) ([]MoodFocusAgg, error)
	DailyMoodFocus(ctx context.Context, userID string, since time.Time) ([]MoodFocusDaily, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	GetByID(ctx context.Context, userID, id string) (*domain.FocusSession, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.FocusSession, error)
	FocusMinutesByDay(ctx context.Context, userID string, since time.Time) (map[string]float64, error)
}

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (*domain.GamificationProfile, error)
	UpsertProfile(ctx context.Context, p *domain.GamificationProfile) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
