package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/coach"
	"focuswave/internal/gamification"
	"focuswave/internal/repository"
	"focuswave/internal/service"
	"focuswave/internal/testutil"
	"focuswave/internal/timer"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, db, "local")

	tasks := repository.NewSQLiteTaskRepo(db)
	moods := repository.NewSQLiteMoodLogRepo(db)
	sessions := repository.NewSQLiteSessionRepo(db)
	profiles := repository.NewSQLiteProfileRepo(db)

	profile := gamification.New(user, profiles)
	sessionSvc := service.NewSessionService(sessions)

	app := &App{
		Tasks:         service.NewTaskService(tasks, profile),
		Moods:         service.NewMoodService(moods),
		Sessions:      sessionSvc,
		Analytics:     service.NewAnalyticsService(tasks, moods, sessions),
		Coach:         coach.NewService(coach.NewHTTPClient(coach.DefaultConfig(), coach.NoopObserver{}), false),
		Timer:         timer.New(user, timer.DefaultDurations(), sessionSvc, profile),
		Profile:       profile,
		UserID:        user,
		IsInteractive: func() bool { return false },
	}
	return app
}

// runCommand executes a command through the Cobra tree and captures stdout.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var out strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&out, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return out.String(), execErr
}

func TestTaskCommands_AddListDone(t *testing.T) {
	app := testApp(t)

	out, err := runCommand(t, app, "task", "add", "write", "report", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Added \"write report\"")

	out, err = runCommand(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "[ ]")

	tasks, err := app.Tasks.List(context.Background(), app.UserID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	out, err = runCommand(t, app, "task", "done", tasks[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	// Completing the task awards points through the gamification engine.
	app.Profile.Flush()
	assert.Equal(t, gamification.PointsPerTask, app.Profile.Profile().TotalPoints)

	out, err = runCommand(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")

	out, err = runCommand(t, app, "task", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
}

func TestTaskCommands_AmbiguousAndMissingRefs(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "task", "done", "nope")
	assert.ErrorContains(t, err, "no task matching")
}

func TestTaskRemoveCommand(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "task", "add", "throwaway")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background(), app.UserID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	out, err := runCommand(t, app, "task", "remove", tasks[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	tasks, err = app.Tasks.List(context.Background(), app.UserID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMoodCommands_LogWithArgument(t *testing.T) {
	app := testApp(t)

	out, err := runCommand(t, app, "mood", "log", "happy", "--note", "sunny")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged mood: happy")

	out, err = runCommand(t, app, "mood", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "happy")
	assert.Contains(t, out, "sunny")
}

func TestMoodCommands_NonInteractiveNeedsArgument(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "mood", "log")
	assert.ErrorContains(t, err, "interactively")
}

func TestStatsCommand(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "task", "add", "one")
	require.NoError(t, err)
	tasks, err := app.Tasks.List(context.Background(), app.UserID)
	require.NoError(t, err)
	_, err = runCommand(t, app, "task", "done", tasks[0].ID)
	require.NoError(t, err)
	app.Profile.Flush()

	out, err := runCommand(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Streak: 1")
	assert.Contains(t, out, "First Task")
	assert.Contains(t, out, "Focus minutes")
}

func TestTimerCommand_RefusesNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "timer")
	assert.ErrorContains(t, err, "interactive terminal")
}
