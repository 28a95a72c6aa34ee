package domain

import "time"

// FocusSession is the durable record of one completed timer phase.
// Built once at phase completion and never mutated afterwards.
type FocusSession struct {
	ID              string
	UserID          string
	SessionType     SessionType
	DurationSeconds int
	CompletedAt     time.Time
}
