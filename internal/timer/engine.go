// Package timer implements the Pomodoro session state machine: a
// work / short-break / long-break cycle driven by a one-second ticker,
// with best-effort session recording and focus-point awarding on
// completed work phases.
package timer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"focuswave/internal/domain"
)

// Default phase durations, in seconds.
const (
	DefaultWorkSeconds       = 25 * 60
	DefaultShortBreakSeconds = 5 * 60
	DefaultLongBreakSeconds  = 15 * 60

	// longBreakEvery is the work-session cycle length: every third
	// completed work session is followed by a long break.
	longBreakEvery = 3

	defaultRecordTimeout = 5 * time.Second
)

// ErrTimerRunning is returned by commands that are only valid while the
// countdown is not running.
var ErrTimerRunning = errors.New("timer is running")

// SessionRecorder persists completed focus sessions. Failures are logged
// and swallowed; the timer never blocks or rolls back on recorder errors.
type SessionRecorder interface {
	RecordSession(ctx context.Context, s *domain.FocusSession) error
}

// FocusAwarder receives focus minutes for completed work phases.
type FocusAwarder interface {
	AwardFocusPoints(minutes float64)
}

// Durations holds the configured phase lengths in seconds.
type Durations struct {
	Work       int
	ShortBreak int
	LongBreak  int
}

// DefaultDurations returns the classic 25/5/15 configuration.
func DefaultDurations() Durations {
	return Durations{
		Work:       DefaultWorkSeconds,
		ShortBreak: DefaultShortBreakSeconds,
		LongBreak:  DefaultLongBreakSeconds,
	}
}

// Snapshot is a point-in-time copy of the timer state for rendering.
type Snapshot struct {
	Phase                 domain.Phase
	RemainingSeconds      int
	Running               bool
	Paused                bool
	CompletedWorkSessions int
	TotalFocusSeconds     int
	Durations             Durations
}

// Engine is the Pomodoro state machine. All commands and the internal tick
// share one mutex, so no tick is ever processed concurrently with a user
// command and phase completion is atomic with the tick that triggered it.
type Engine struct {
	mu sync.Mutex

	userID    string
	phase     domain.Phase
	remaining int
	running   bool
	paused    bool
	durations Durations

	completedWork     int
	totalFocusSeconds int

	recorder SessionRecorder
	awarder  FocusAwarder

	logger        *slog.Logger
	now           func() time.Time
	tickInterval  time.Duration
	recordTimeout time.Duration

	// stop cancels the active ticker goroutine. Nil while not running.
	stop chan struct{}
	wg   sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for recorder failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithNow overrides the completion-timestamp clock.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithTickInterval overrides the one-second tick cadence.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) { e.tickInterval = d }
}

// WithRecordTimeout bounds the session-record submission.
func WithRecordTimeout(d time.Duration) Option {
	return func(e *Engine) { e.recordTimeout = d }
}

// New creates an idle engine on the Work phase. A nil recorder or awarder
// disables the corresponding completion side effect.
func New(userID string, d Durations, recorder SessionRecorder, awarder FocusAwarder, opts ...Option) *Engine {
	if d.Work <= 0 {
		d.Work = DefaultWorkSeconds
	}
	if d.ShortBreak <= 0 {
		d.ShortBreak = DefaultShortBreakSeconds
	}
	if d.LongBreak <= 0 {
		d.LongBreak = DefaultLongBreakSeconds
	}
	e := &Engine{
		userID:        userID,
		phase:         domain.PhaseWork,
		remaining:     d.Work,
		durations:     d,
		recorder:      recorder,
		awarder:       awarder,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
		tickInterval:  time.Second,
		recordTimeout: defaultRecordTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start arms the ticker. No-op if already running; resuming from paused is
// the same operation. Any previous ticker is canceled first so two tickers
// can never decrement concurrently.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	e.cancelTickerLocked()
	stop := make(chan struct{})
	e.stop = stop
	e.running = true
	e.paused = false
	go e.run(stop)
}

// Resume is Start from the paused state.
func (e *Engine) Resume() { e.Start() }

// Pause stops the ticker and preserves the remaining time.
// Valid only while running; otherwise a no-op.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.cancelTickerLocked()
	e.running = false
	e.paused = true
}

// Reset stops the ticker and restores the configured duration of the
// current phase. The phase and completed-session counter are unchanged.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTickerLocked()
	e.running = false
	e.paused = false
	e.remaining = e.durationForLocked(e.phase)
}

// SetPhase switches to the given phase and resets the countdown to that
// phase's configured duration. Rejected while the timer is running.
func (e *Engine) SetPhase(p domain.Phase) error {
	switch p {
	case domain.PhaseWork, domain.PhaseShortBreak, domain.PhaseLongBreak:
	default:
		return errors.New("unknown phase: " + string(p))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrTimerRunning
	}
	e.phase = p
	e.paused = false
	e.remaining = e.durationForLocked(p)
	return nil
}

// SetWorkDuration updates the configured work length. The current countdown
// is resized only when the timer is not running and on the Work phase;
// otherwise the new value takes effect at the next phase start.
func (e *Engine) SetWorkDuration(seconds int) {
	if seconds <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.durations.Work = seconds
	if !e.running && e.phase == domain.PhaseWork {
		e.remaining = seconds
	}
}

// SetShortBreakDuration updates the configured short-break length,
// effective at the next phase start.
func (e *Engine) SetShortBreakDuration(seconds int) {
	if seconds <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.durations.ShortBreak = seconds
}

// SetLongBreakDuration updates the configured long-break length,
// effective at the next phase start.
func (e *Engine) SetLongBreakDuration(seconds int) {
	if seconds <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.durations.LongBreak = seconds
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Phase:                 e.phase,
		RemainingSeconds:      e.remaining,
		Running:               e.running,
		Paused:                e.paused,
		CompletedWorkSessions: e.completedWork,
		TotalFocusSeconds:     e.totalFocusSeconds,
		Durations:             e.durations,
	}
}

// Stop cancels any active ticker and waits for in-flight session records.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.cancelTickerLocked()
	e.running = false
	e.paused = false
	e.mu.Unlock()
	e.wg.Wait()
}

// Flush waits for in-flight session-record submissions.
func (e *Engine) Flush() { e.wg.Wait() }

func (e *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !e.tick() {
				return
			}
		}
	}
}

// tick applies one elapsed second. Returns false when the ticker goroutine
// should exit, either because the countdown finished or the engine was
// stopped between ticks.
func (e *Engine) tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return false
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining == 0 {
		e.completePhaseLocked()
		return false
	}
	return true
}

// completePhaseLocked runs the phase-completion transition. Caller holds
// the mutex, so no command or tick can observe remaining == 0 while running.
func (e *Engine) completePhaseLocked() {
	finished := e.phase
	configured := e.durationForLocked(finished)

	// Work phases persist the seconds actually spent; break records keep
	// a literal zero duration.
	elapsed := 0
	if finished == domain.PhaseWork {
		elapsed = configured - e.remaining
	}
	e.submitRecord(&domain.FocusSession{
		UserID:          e.userID,
		SessionType:     domain.SessionTypeFor(finished),
		DurationSeconds: elapsed,
		CompletedAt:     e.now().UTC(),
	})

	next := domain.PhaseWork
	if finished == domain.PhaseWork {
		// Long break after every third work session, decided on the
		// pre-increment count: sessions 3, 6, 9, ...
		next = domain.PhaseShortBreak
		if e.completedWork%longBreakEvery == longBreakEvery-1 {
			next = domain.PhaseLongBreak
		}
		e.completedWork++
		e.totalFocusSeconds += elapsed
		if e.awarder != nil {
			e.awarder.AwardFocusPoints(float64(configured) / 60.0)
		}
	}

	e.phase = next
	e.remaining = e.durationForLocked(next)
	e.running = false
	e.paused = false
	// The ticker goroutine exits via tick's false return; drop the handle
	// so a later Start cannot close an already-dead channel.
	e.stop = nil
}

// submitRecord hands the session to the recorder off the tick path.
// A slow or failing recorder must never stall the countdown.
func (e *Engine) submitRecord(s *domain.FocusSession) {
	if e.recorder == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), e.recordTimeout)
		defer cancel()
		if err := e.recorder.RecordSession(ctx, s); err != nil {
			e.logger.Error("recording focus session failed",
				"session_type", s.SessionType,
				"duration_seconds", s.DurationSeconds,
				"error", err)
		}
	}()
}

func (e *Engine) cancelTickerLocked() {
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
}

func (e *Engine) durationForLocked(p domain.Phase) int {
	switch p {
	case domain.PhaseLongBreak:
		return e.durations.LongBreak
	case domain.PhaseShortBreak:
		return e.durations.ShortBreak
	default:
		return e.durations.Work
	}
}
