package repository_test

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

func TestMoodLogRepo_CreateListUpdateDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteMoodLogRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &domain.MoodLog{
		ID: "m1", UserID: user, Mood: domain.MoodHappy, Note: "good start", CreatedAt: base,
	}))
	require.NoError(t, repo.Create(ctx, &domain.MoodLog{
		ID: "m2", UserID: user, Mood: domain.MoodTired, CreatedAt: base.Add(time.Hour),
	}))

	logs, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "m2", logs[0].ID, "newest first")

	require.NoError(t, repo.Update(ctx, &domain.MoodLog{
		ID: "m1", UserID: user, Mood: domain.MoodCalm, Note: "settled down",
	}))
	got, err := repo.GetByID(ctx, user, "m1")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodCalm, got.Mood)
	assert.Equal(t, "settled down", got.Note)

	require.NoError(t, repo.Delete(ctx, user, "m2"))
	_, err = repo.GetByID(ctx, user, "m2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMoodLogRepo_UpdateMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteMoodLogRepo(database)

	err := repo.Update(context.Background(), &domain.MoodLog{ID: "ghost", UserID: user, Mood: domain.MoodSad})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMoodLogRepo_AggregateMoodFocus(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	moods := repository.NewSQLiteMoodLogRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day1 := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, moods.Create(ctx, &domain.MoodLog{ID: "m1", UserID: user, Mood: domain.MoodHappy, CreatedAt: day1}))
	require.NoError(t, moods.Create(ctx, &domain.MoodLog{ID: "m2", UserID: user, Mood: domain.MoodTired, CreatedAt: day2}))

	// Two work sessions on the happy day, none on the tired day.
	require.NoError(t, sessions.Create(ctx, &domain.FocusSession{
		ID: "s1", UserID: user, SessionType: domain.SessionWork, DurationSeconds: 1800, CompletedAt: day1.Add(time.Hour),
	}))
	require.NoError(t, sessions.Create(ctx, &domain.FocusSession{
		ID: "s2", UserID: user, SessionType: domain.SessionWork, DurationSeconds: 600, CompletedAt: day1.Add(2 * time.Hour),
	}))

	aggs, err := moods.AggregateMoodFocus(ctx, user, day1.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	byMood := make(map[domain.Mood]repository.MoodFocusAgg)
	for _, a := range aggs {
		byMood[a.Mood] = a
	}

	happy := byMood[domain.MoodHappy]
	assert.Equal(t, 2, happy.FocusSessions)
	assert.InDelta(t, 40.0, happy.TotalFocusMinutes, 1e-9)
	assert.InDelta(t, 20.0, happy.AvgFocusMinutes, 1e-9)
	assert.InDelta(t, 30.0, happy.MaxFocusMinutes, 1e-9)
	assert.InDelta(t, 10.0, happy.MinFocusMinutes, 1e-9)
	assert.Equal(t, 1, happy.MoodDays)

	tired := byMood[domain.MoodTired]
	assert.Zero(t, tired.FocusSessions)
	assert.Zero(t, tired.TotalFocusMinutes)

	// Highest average focus first.
	assert.Equal(t, domain.MoodHappy, aggs[0].Mood)
}

func TestMoodLogRepo_DailyMoodFocus(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	moods := repository.NewSQLiteMoodLogRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	day := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	require.NoError(t, moods.Create(ctx, &domain.MoodLog{ID: "m1", UserID: user, Mood: domain.MoodCalm, CreatedAt: day}))
	require.NoError(t, sessions.Create(ctx, &domain.FocusSession{
		ID: "s1", UserID: user, SessionType: domain.SessionWork, DurationSeconds: 1500, CompletedAt: day.Add(time.Hour),
	}))

	daily, err := moods.DailyMoodFocus(ctx, user, day.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "2026-05-20", daily[0].Date)
	assert.Equal(t, domain.MoodCalm, daily[0].Mood)
	assert.InDelta(t, 25.0, daily[0].FocusMinutes, 1e-9)
	assert.Equal(t, 1, daily[0].SessionCount)
}
