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

func newTask(userID, id, title string, at time.Time) *domain.Task {
	return &domain.Task{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	task := newTask(user, "t1", "Write report", time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC))
	task.Description = "quarterly numbers"
	task.Tag = "work"
	task.Priority = domain.PriorityHigh
	task.DueDate = &due
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, user, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Description)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.TaskPending, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestTaskRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), user, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepo_UpdateAndDeleteMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	ghost := newTask(user, "ghost", "Nope", time.Now().UTC())
	assert.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user, "ghost"), repository.ErrNotFound)
}

func TestTaskRepo_ScopedToUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	u1 := testutil.SeedUser(t, database, "u1")
	u2 := testutil.SeedUser(t, database, "u2")
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTask(u1, "t1", "Mine", time.Now().UTC())))

	_, err := repo.GetByID(ctx, u2, "t1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u2, "t1"), repository.ErrNotFound)
}

func TestTaskRepo_ReorderRewritesOrderIndexes(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		task := newTask(user, id, "Task "+id, base.Add(time.Duration(i)*time.Minute))
		task.OrderIndex = i
		require.NoError(t, repo.Create(ctx, task))
	}

	require.NoError(t, repo.Reorder(ctx, user, []string{"c", "a", "b"}))

	tasks, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "c", tasks[0].ID)
	assert.Equal(t, "a", tasks[1].ID)
	assert.Equal(t, "b", tasks[2].ID)
}

func TestTaskRepo_CountsByDay(t *testing.T) {
	database := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, database, "u1")
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	day1 := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, repo.Create(ctx, newTask(user, "a", "A", day1)))
	require.NoError(t, repo.Create(ctx, newTask(user, "b", "B", day1)))
	done := newTask(user, "c", "C", day1)
	require.NoError(t, repo.Create(ctx, done))
	done.Status = domain.TaskCompleted
	done.UpdatedAt = day2
	require.NoError(t, repo.Update(ctx, done))

	created, err := repo.CreatedCountByDay(ctx, user, day1.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-05-20": 3}, created)

	completed, err := repo.CompletedCountByDay(ctx, user, day1.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-05-21": 1}, completed)
}
