package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"focuswave/internal/coach"
	"focuswave/internal/gamification"
	"focuswave/internal/service"
	"focuswave/internal/timer"
)

// App holds everything the CLI commands need: the local user's timer and
// gamification engines plus the shared services.
type App struct {
	Tasks     service.TaskService
	Moods     service.MoodService
	Sessions  service.SessionService
	Analytics service.AnalyticsService
	Coach     *coach.Service

	Timer   *timer.Engine
	Profile *gamification.Engine

	// UserID is the local CLI user every command operates as.
	UserID string

	// Handler and Addr configure the serve command.
	Handler http.Handler
	Addr    string

	// IsInteractive gates TUI entrypoints; overridable in tests.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "focuswave" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.IsInteractive == nil {
		app.IsInteractive = isInteractive
	}

	root := &cobra.Command{
		Use:   "focuswave",
		Short: "Pomodoro timer with tasks, mood tracking and gamification",
	}

	root.AddCommand(
		newTimerCmd(app),
		newTaskCmd(app),
		newMoodCmd(app),
		newStatsCmd(app),
		newServeCmd(app),
	)

	return root
}
