package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
	"focuswave/internal/testutil"
)

func setupMoodService(t *testing.T) (MoodService, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, db, "u1")
	return NewMoodService(repository.NewSQLiteMoodLogRepo(db)), user
}

func TestMoodService_LogAndList(t *testing.T) {
	svc, user := setupMoodService(t)
	ctx := context.Background()

	entry, err := svc.Log(ctx, user, "happy", "sunny morning")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, domain.MoodHappy, entry.Mood)
	assert.False(t, entry.CreatedAt.IsZero())

	logs, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "sunny morning", logs[0].Note)
}

func TestMoodService_RejectsUnknownMood(t *testing.T) {
	svc, user := setupMoodService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, user, "ecstatic", "")
	assert.ErrorIs(t, err, ErrValidation)

	entry, err := svc.Log(ctx, user, "calm", "")
	require.NoError(t, err)
	_, err = svc.Update(ctx, user, entry.ID, "meh", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMoodService_UpdateAndDelete(t *testing.T) {
	svc, user := setupMoodService(t)
	ctx := context.Background()

	entry, err := svc.Log(ctx, user, "tired", "long day")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user, entry.ID, "calm", "after a walk")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodCalm, updated.Mood)
	assert.Equal(t, "after a walk", updated.Note)

	require.NoError(t, svc.Delete(ctx, user, entry.ID))
	logs, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = svc.Update(ctx, user, entry.ID, "calm", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
