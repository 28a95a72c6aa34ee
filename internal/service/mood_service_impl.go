package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
)

type moodService struct {
	moods repository.MoodLogRepo
	now   func() time.Time
}

func NewMoodService(moods repository.MoodLogRepo) MoodService {
	return &moodService{moods: moods, now: time.Now}
}

func (s *moodService) Log(ctx context.Context, userID, mood, note string) (*domain.MoodLog, error) {
	if !domain.ValidMoods[mood] {
		return nil, fmt.Errorf("%w: unknown mood %q", ErrValidation, mood)
	}
	entry := &domain.MoodLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      domain.Mood(mood),
		Note:      note,
		CreatedAt: s.now().UTC(),
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodService) List(ctx context.Context, userID string) ([]*domain.MoodLog, error) {
	return s.moods.ListByUser(ctx, userID)
}

func (s *moodService) Update(ctx context.Context, userID, id, mood, note string) (*domain.MoodLog, error) {
	if !domain.ValidMoods[mood] {
		return nil, fmt.Errorf("%w: unknown mood %q", ErrValidation, mood)
	}
	entry, err := s.moods.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	entry.Mood = domain.Mood(mood)
	entry.Note = note
	if err := s.moods.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodService) Delete(ctx context.Context, userID, id string) error {
	return s.moods.Delete(ctx, userID, id)
}
