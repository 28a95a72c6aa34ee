package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"focuswave/internal/domain"
	"focuswave/internal/timer"
)

func newTimerCmd(app *App) *cobra.Command {
	var workMin, shortMin, longMin int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the Pomodoro timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("timer requires an interactive terminal")
			}
			if workMin > 0 {
				app.Timer.SetWorkDuration(workMin * 60)
			}
			if shortMin > 0 {
				app.Timer.SetShortBreakDuration(shortMin * 60)
			}
			if longMin > 0 {
				app.Timer.SetLongBreakDuration(longMin * 60)
			}

			model := newTimerModel(app.Timer)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()

			app.Timer.Stop()
			app.Timer.Flush()
			if app.Profile != nil {
				app.Profile.Flush()
			}
			return err
		},
	}

	cmd.Flags().IntVar(&workMin, "work", 0, "Work duration in minutes")
	cmd.Flags().IntVar(&shortMin, "short-break", 0, "Short break duration in minutes")
	cmd.Flags().IntVar(&longMin, "long-break", 0, "Long break duration in minutes")

	return cmd
}

type timerKeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Work   key.Binding
	Short  key.Binding
	Long   key.Binding
	Quit   key.Binding
}

var timerKeys = timerKeyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Work:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work")),
	Short:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "short break")),
	Long:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "long break")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// timerTickMsg drives the periodic re-render; the engine keeps its own
// clock, the TUI only snapshots it.
type timerTickMsg time.Time

func timerTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

type timerModel struct {
	engine *timer.Engine
	status string
}

func newTimerModel(engine *timer.Engine) timerModel {
	return timerModel{engine: engine}
}

func (m timerModel) Init() tea.Cmd {
	return timerTick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return m, timerTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, timerKeys.Toggle):
			if m.engine.Snapshot().Running {
				m.engine.Pause()
			} else {
				m.engine.Start()
			}
			m.status = ""
		case key.Matches(msg, timerKeys.Reset):
			m.engine.Reset()
			m.status = ""
		case key.Matches(msg, timerKeys.Work):
			m.status = phaseSwitchStatus(m.engine.SetPhase(domain.PhaseWork))
		case key.Matches(msg, timerKeys.Short):
			m.status = phaseSwitchStatus(m.engine.SetPhase(domain.PhaseShortBreak))
		case key.Matches(msg, timerKeys.Long):
			m.status = phaseSwitchStatus(m.engine.SetPhase(domain.PhaseLongBreak))
		}
	}
	return m, nil
}

func phaseSwitchStatus(err error) string {
	if err != nil {
		return "pause the timer before switching phases"
	}
	return ""
}

func (m timerModel) View() string {
	snap := m.engine.Snapshot()

	state := "idle"
	switch {
	case snap.Running:
		state = "running"
	case snap.Paused:
		state = "paused"
	}

	total := snap.Durations.Work
	switch snap.Phase {
	case domain.PhaseShortBreak:
		total = snap.Durations.ShortBreak
	case domain.PhaseLongBreak:
		total = snap.Durations.LongBreak
	}

	view := titleStyle.Render("focuswave") + "\n\n"
	view += phaseStyle.Render(phaseLabel(snap.Phase)) + dimStyle.Render("  ·  "+state) + "\n\n"
	view += clockStyle.Render(formatClock(snap.RemainingSeconds)) + "\n"
	view += renderBar(total-snap.RemainingSeconds, total, 30) + "\n\n"
	view += dimStyle.Render(fmt.Sprintf("work sessions: %d   focus: %s",
		snap.CompletedWorkSessions, formatClock(snap.TotalFocusSeconds))) + "\n"
	if m.status != "" {
		view += "\n" + dimStyle.Render(m.status) + "\n"
	}
	view += "\n" + dimStyle.Render("space start/pause · r reset · w/s/l phase · q quit") + "\n"
	return view
}

func phaseLabel(p domain.Phase) string {
	switch p {
	case domain.PhaseShortBreak:
		return "Short Break"
	case domain.PhaseLongBreak:
		return "Long Break"
	default:
		return "Work"
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
