package service

import (
	"context"
	"time"

	"focuswave/internal/domain"
)

// TaskInput is the caller-supplied shape for creating a task.
type TaskInput struct {
	Title       string
	Description string
	Tag         string
	Priority    string
	DueDate     *time.Time
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Tag         *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
	ClearDue    bool
}

type TaskService interface {
	Create(ctx context.Context, userID string, in TaskInput) (*domain.Task, error)
	Get(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, userID, id string, in TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
	Reorder(ctx context.Context, userID string, orderedIDs []string) error
}

type MoodService interface {
	Log(ctx context.Context, userID, mood, note string) (*domain.MoodLog, error)
	List(ctx context.Context, userID string) ([]*domain.MoodLog, error)
	Update(ctx context.Context, userID, id, mood, note string) (*domain.MoodLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// DayMinutes is one zero-filled day bucket of focus minutes.
type DayMinutes struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type SessionService interface {
	// RecordSession persists a completed focus session, assigning an id
	// and defaulting the completion timestamp when unset. The signature
	// matches timer.SessionRecorder so the timer engine can write
	// through the service directly.
	RecordSession(ctx context.Context, s *domain.FocusSession) error
	History(ctx context.Context, userID string, limit int) ([]*domain.FocusSession, error)
	StatsByDay(ctx context.Context, userID string, days int) ([]DayMinutes, error)
}

// ThroughputDay is one zero-filled day bucket of task counts.
type ThroughputDay struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// MoodAgg is the per-mood slice of the mood-vs-focus correlation.
type MoodAgg struct {
	Mood              string  `json:"mood"`
	AvgFocusMinutes   float64 `json:"avgFocusMinutes"`
	MaxFocusMinutes   float64 `json:"maxFocusMinutes"`
	MinFocusMinutes   float64 `json:"minFocusMinutes"`
	MoodDays          int     `json:"moodDays"`
	FocusSessions     int     `json:"focusSessions"`
	TotalFocusMinutes float64 `json:"totalFocusMinutes"`
}

// MoodDaily is one day/mood point of the correlation breakdown.
type MoodDaily struct {
	Date         string  `json:"date"`
	Mood         string  `json:"mood"`
	FocusMinutes float64 `json:"focusMinutes"`
	SessionCount int     `json:"sessionCount"`
}

// MoodInsights summarizes the correlation report.
type MoodInsights struct {
	BestMoodForFocus      *MoodAgg `json:"bestMoodForFocus"`
	WorstMoodForFocus     *MoodAgg `json:"worstMoodForFocus"`
	TotalDataPoints       int      `json:"totalDataPoints"`
	TotalDays             int      `json:"totalDays"`
	AverageFocusOverall   float64  `json:"averageFocusOverall"`
	StrongestCorrelation  *MoodAgg `json:"strongestCorrelation"`
}

// TimeRange describes the window a report covers.
type TimeRange struct {
	Days      int    `json:"days"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// MoodFocusReport is the full mood-vs-focus correlation payload.
type MoodFocusReport struct {
	Aggregated []MoodAgg    `json:"aggregated"`
	Daily      []MoodDaily  `json:"daily"`
	Insights   MoodInsights `json:"insights"`
	TimeRange  TimeRange    `json:"timeRange"`
}

type AnalyticsService interface {
	FocusMinutes(ctx context.Context, userID string, days int) ([]DayMinutes, error)
	TaskThroughput(ctx context.Context, userID string, days int) ([]ThroughputDay, error)
	MoodFocus(ctx context.Context, userID string, days int) (*MoodFocusReport, error)
}

// AuthResult is a successful registration or login.
type AuthResult struct {
	Token string
	User  domain.User
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ParseToken validates a bearer token and returns the user id.
	ParseToken(token string) (string, error)
}
