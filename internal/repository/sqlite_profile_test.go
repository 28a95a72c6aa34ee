package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
	"focuswave/internal/testutil"
)

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	profile := &domain.GamificationProfile{
		UserID:           user,
		Points:           120,
		TotalPoints:      1120,
		Streak:           4,
		LastActivityDate: "2026-05-20",
		UnlockedBadges:   []string{"first_task", "focus_master"},
	}
	require.NoError(t, repo.UpsertProfile(ctx, profile))

	got, err := repo.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Points)
	assert.Equal(t, 1120, got.TotalPoints)
	assert.Equal(t, 2, got.Level())
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, "2026-05-20", got.LastActivityDate)
	assert.Equal(t, []string{"first_task", "focus_master"}, got.UnlockedBadges)
}

func TestProfileRepo_UpsertOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpsertProfile(ctx, &domain.GamificationProfile{UserID: user, TotalPoints: 10}))
	require.NoError(t, repo.UpsertProfile(ctx, &domain.GamificationProfile{
		UserID: user, TotalPoints: 50, Streak: 2, UnlockedBadges: []string{"first_task"},
	}))

	got, err := repo.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 50, got.TotalPoints)
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, []string{"first_task"}, got.UnlockedBadges)
}

func TestProfileRepo_MissingProfileReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)

	_, err := repo.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepo_EmptyBadgeSetRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpsertProfile(ctx, &domain.GamificationProfile{UserID: user}))

	got, err := repo.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, got.UnlockedBadges)
}
