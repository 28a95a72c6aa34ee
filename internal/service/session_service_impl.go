package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	now      func() time.Time
	loc      *time.Location
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions, now: time.Now, loc: time.UTC}
}

func (s *sessionService) RecordSession(ctx context.Context, session *domain.FocusSession) error {
	if session.SessionType != domain.SessionWork && session.SessionType != domain.SessionBreak {
		return fmt.Errorf("%w: unknown session type %q", ErrValidation, session.SessionType)
	}
	if session.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrValidation)
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = s.now()
	}
	// Stored timestamps are compared as strings, so offset-bearing values
	// must be normalized before they reach the repository.
	session.CompletedAt = session.CompletedAt.UTC()
	return s.sessions.Create(ctx, session)
}

func (s *sessionService) History(ctx context.Context, userID string, limit int) ([]*domain.FocusSession, error) {
	return s.sessions.ListRecent(ctx, userID, limit)
}

func (s *sessionService) StatsByDay(ctx context.Context, userID string, days int) ([]DayMinutes, error) {
	since, keys := dayWindow(s.now(), days, s.loc)
	byDay, err := s.sessions.FocusMinutesByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]DayMinutes, 0, len(keys))
	for _, key := range keys {
		out = append(out, DayMinutes{Date: key, Minutes: int(math.Round(byDay[key]))})
	}
	return out, nil
}
