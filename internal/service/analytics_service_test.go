package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
	"focuswave/internal/testutil"
)

type analyticsFixture struct {
	svc      *analyticsService
	tasks    repository.TaskRepo
	moods    repository.MoodLogRepo
	sessions repository.SessionRepo
	user     string
}

func setupAnalytics(t *testing.T, now time.Time) analyticsFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, db, "u1")
	tasks := repository.NewSQLiteTaskRepo(db)
	moods := repository.NewSQLiteMoodLogRepo(db)
	sessions := repository.NewSQLiteSessionRepo(db)
	svc := NewAnalyticsService(tasks, moods, sessions).(*analyticsService)
	svc.now = func() time.Time { return now }
	return analyticsFixture{svc: svc, tasks: tasks, moods: moods, sessions: sessions, user: user}
}

func TestAnalytics_FocusMinutesZeroFills(t *testing.T) {
	now := time.Date(2026, 5, 22, 18, 0, 0, 0, time.UTC)
	f := setupAnalytics(t, now)
	ctx := context.Background()

	require.NoError(t, f.sessions.Create(ctx, &domain.FocusSession{
		ID: "s1", UserID: f.user, SessionType: domain.SessionWork,
		DurationSeconds: 1500, CompletedAt: now.AddDate(0, 0, -2),
	}))
	require.NoError(t, f.sessions.Create(ctx, &domain.FocusSession{
		ID: "s2", UserID: f.user, SessionType: domain.SessionWork,
		DurationSeconds: 900, CompletedAt: now,
	}))

	days, err := f.svc.FocusMinutes(ctx, f.user, 4)
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, DayMinutes{Date: "2026-05-19", Minutes: 0}, days[0])
	assert.Equal(t, DayMinutes{Date: "2026-05-20", Minutes: 25}, days[1])
	assert.Equal(t, DayMinutes{Date: "2026-05-21", Minutes: 0}, days[2])
	assert.Equal(t, DayMinutes{Date: "2026-05-22", Minutes: 15}, days[3])
}

func TestAnalytics_TaskThroughputCountsCreatedAndCompleted(t *testing.T) {
	now := time.Date(2026, 5, 22, 18, 0, 0, 0, time.UTC)
	f := setupAnalytics(t, now)
	ctx := context.Background()

	yesterday := now.AddDate(0, 0, -1)
	require.NoError(t, f.tasks.Create(ctx, &domain.Task{
		ID: "t1", UserID: f.user, Title: "a", Priority: domain.PriorityMedium,
		Status: domain.TaskPending, CreatedAt: yesterday, UpdatedAt: yesterday,
	}))
	require.NoError(t, f.tasks.Create(ctx, &domain.Task{
		ID: "t2", UserID: f.user, Title: "b", Priority: domain.PriorityMedium,
		Status: domain.TaskCompleted, CreatedAt: yesterday, UpdatedAt: now,
	}))

	days, err := f.svc.TaskThroughput(ctx, f.user, 2)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, ThroughputDay{Date: "2026-05-21", Created: 2, Completed: 0}, days[0])
	assert.Equal(t, ThroughputDay{Date: "2026-05-22", Created: 0, Completed: 1}, days[1])
}

func TestAnalytics_MoodFocusReport(t *testing.T) {
	now := time.Date(2026, 5, 22, 18, 0, 0, 0, time.UTC)
	f := setupAnalytics(t, now)
	ctx := context.Background()

	happyDay := now.AddDate(0, 0, -2)
	tiredDay := now.AddDate(0, 0, -1)
	require.NoError(t, f.moods.Create(ctx, &domain.MoodLog{ID: "m1", UserID: f.user, Mood: domain.MoodHappy, CreatedAt: happyDay}))
	require.NoError(t, f.moods.Create(ctx, &domain.MoodLog{ID: "m2", UserID: f.user, Mood: domain.MoodTired, CreatedAt: tiredDay}))

	require.NoError(t, f.sessions.Create(ctx, &domain.FocusSession{
		ID: "s1", UserID: f.user, SessionType: domain.SessionWork,
		DurationSeconds: 1800, CompletedAt: happyDay.Add(time.Hour),
	}))
	require.NoError(t, f.sessions.Create(ctx, &domain.FocusSession{
		ID: "s2", UserID: f.user, SessionType: domain.SessionWork,
		DurationSeconds: 600, CompletedAt: happyDay.Add(2 * time.Hour),
	}))
	require.NoError(t, f.sessions.Create(ctx, &domain.FocusSession{
		ID: "s3", UserID: f.user, SessionType: domain.SessionWork,
		DurationSeconds: 600, CompletedAt: tiredDay.Add(time.Hour),
	}))

	report, err := f.svc.MoodFocus(ctx, f.user, 7)
	require.NoError(t, err)

	require.Len(t, report.Aggregated, 2)
	assert.Equal(t, "happy", report.Aggregated[0].Mood, "highest average first")
	assert.InDelta(t, 20.0, report.Aggregated[0].AvgFocusMinutes, 1e-9)
	assert.InDelta(t, 40.0, report.Aggregated[0].TotalFocusMinutes, 1e-9)
	assert.Equal(t, "tired", report.Aggregated[1].Mood)
	assert.InDelta(t, 10.0, report.Aggregated[1].AvgFocusMinutes, 1e-9)

	require.Len(t, report.Daily, 2)

	require.NotNil(t, report.Insights.BestMoodForFocus)
	assert.Equal(t, "happy", report.Insights.BestMoodForFocus.Mood)
	require.NotNil(t, report.Insights.WorstMoodForFocus)
	assert.Equal(t, "tired", report.Insights.WorstMoodForFocus.Mood)
	assert.Equal(t, 2, report.Insights.TotalDataPoints)
	assert.Equal(t, 7, report.Insights.TotalDays)
	// 50 focus minutes across 2 mood days.
	assert.InDelta(t, 25.0, report.Insights.AverageFocusOverall, 1e-9)
	// Tired has zero spread (one session), happy spreads 30-10.
	require.NotNil(t, report.Insights.StrongestCorrelation)
	assert.Equal(t, "tired", report.Insights.StrongestCorrelation.Mood)

	assert.Equal(t, 7, report.TimeRange.Days)
	assert.Equal(t, "2026-05-16", report.TimeRange.StartDate)
	assert.Equal(t, "2026-05-22", report.TimeRange.EndDate)
}

func TestAnalytics_MoodFocusEmptyWindow(t *testing.T) {
	now := time.Date(2026, 5, 22, 18, 0, 0, 0, time.UTC)
	f := setupAnalytics(t, now)

	report, err := f.svc.MoodFocus(context.Background(), f.user, 7)
	require.NoError(t, err)
	assert.Empty(t, report.Aggregated)
	assert.Empty(t, report.Daily)
	assert.Nil(t, report.Insights.BestMoodForFocus)
	assert.Zero(t, report.Insights.AverageFocusOverall)
}
