// Package gamification maintains the per-user points, level, streak and
// badge state as a function of completed tasks and focus sessions. The
// in-memory profile is authoritative; persistence is best effort.
package gamification

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"focuswave/internal/domain"
)

// Points awarded per qualifying activity.
const (
	PointsPerTask        = 10
	PointsPerFocusMinute = 1

	defaultPersistTimeout = 5 * time.Second

	// dayFormat is the calendar-day key used for streak accounting.
	dayFormat = "2006-01-02"
)

// ProfileStore persists gamification profiles. Store failures are logged
// and swallowed; the engine never rolls back in-memory state.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*domain.GamificationProfile, error)
	UpsertProfile(ctx context.Context, p *domain.GamificationProfile) error
}

// Engine owns one user's gamification profile.
type Engine struct {
	mu      sync.Mutex
	profile domain.GamificationProfile

	store          ProfileStore
	logger         *slog.Logger
	now            func() time.Time
	loc            *time.Location
	persistTimeout time.Duration
	wg             sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithNow overrides the clock used for streak day computation.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the timezone whose calendar days bound the streak.
// The default is UTC, matching the analytics day bucketing.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithPersistTimeout bounds each background profile write.
func WithPersistTimeout(d time.Duration) Option {
	return func(e *Engine) { e.persistTimeout = d }
}

// New creates an engine with a zero profile for the user. A nil store
// disables persistence.
func New(userID string, store ProfileStore, opts ...Option) *Engine {
	e := &Engine{
		profile:        domain.GamificationProfile{UserID: userID},
		store:          store,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            time.Now,
		loc:            time.UTC,
		persistTimeout: defaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the in-memory profile with the stored one. A missing
// profile leaves the zero profile in place and is not an error.
func (e *Engine) Load(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	e.mu.Lock()
	userID := e.profile.UserID
	e.mu.Unlock()

	p, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.profile = *p
	e.mu.Unlock()
	return nil
}

// AwardPoints adds a non-negative amount to points and totalPoints, unions
// in any newly satisfied badges, extends the streak for today and persists
// the profile in the background. A zero amount still counts as activity
// for the streak. Negative amounts are rejected as a no-op.
func (e *Engine) AwardPoints(amount int) {
	if amount < 0 {
		return
	}
	e.mu.Lock()
	e.profile.Points += amount
	e.profile.TotalPoints += amount
	e.profile.UnlockedBadges = append(e.profile.UnlockedBadges,
		domain.NewlyUnlocked(e.profile.TotalPoints, e.profile.Streak, e.profile.UnlockedBadges)...)
	e.updateStreakLocked()
	// Streak growth can satisfy streak badges in the same award.
	e.profile.UnlockedBadges = append(e.profile.UnlockedBadges,
		domain.NewlyUnlocked(e.profile.TotalPoints, e.profile.Streak, e.profile.UnlockedBadges)...)
	snapshot := cloneProfile(e.profile)
	e.mu.Unlock()

	e.persist(snapshot)
}

// AwardTaskPoints awards the flat per-task amount.
func (e *Engine) AwardTaskPoints() {
	e.AwardPoints(PointsPerTask)
}

// AwardFocusPoints awards one point per focus minute. Minutes are rounded
// to the nearest whole minute so point totals stay integral.
func (e *Engine) AwardFocusPoints(minutes float64) {
	if minutes < 0 {
		return
	}
	e.AwardPoints(int(math.Round(minutes)) * PointsPerFocusMinute)
}

// updateStreakLocked extends or resets the consecutive-day streak.
// Idempotent within a calendar day: repeat awards on the same day return
// early and never inflate the streak.
func (e *Engine) updateStreakLocked() {
	today := e.now().In(e.loc).Format(dayFormat)
	if e.profile.LastActivityDate == today {
		return
	}
	yesterday := e.now().In(e.loc).AddDate(0, 0, -1).Format(dayFormat)
	if e.profile.LastActivityDate == "" || e.profile.LastActivityDate == yesterday {
		e.profile.Streak++
	} else {
		e.profile.Streak = 1
	}
	e.profile.LastActivityDate = today
}

// Profile returns a copy of the current in-memory profile.
func (e *Engine) Profile() domain.GamificationProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneProfile(e.profile)
}

// Flush waits for in-flight background profile writes.
func (e *Engine) Flush() { e.wg.Wait() }

func (e *Engine) persist(p domain.GamificationProfile) {
	if e.store == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), e.persistTimeout)
		defer cancel()
		if err := e.store.UpsertProfile(ctx, &p); err != nil {
			e.logger.Error("persisting gamification profile failed",
				"user_id", p.UserID,
				"total_points", p.TotalPoints,
				"error", err)
		}
	}()
}

func cloneProfile(p domain.GamificationProfile) domain.GamificationProfile {
	out := p
	out.UnlockedBadges = make([]string, len(p.UnlockedBadges))
	copy(out.UnlockedBadges, p.UnlockedBadges)
	return out
}
