package coach

import (
	"context"
	"math/rand"
)

// Service wraps a Client with static fallbacks so coaching features keep
// working when the model service is disabled or unreachable.
type Service struct {
	client  Client
	enabled bool
	pick    func(n int) int
}

func NewService(client Client, enabled bool) *Service {
	return &Service{client: client, enabled: enabled, pick: rand.Intn}
}

// DefaultRecommendationReason is returned when the recommender cannot
// be reached and the stock Pomodoro timing is used instead.
const DefaultRecommendationReason = "Using default Pomodoro timing (ML service unavailable)"

var fallbackMessages = []string{
	"Small steps add up. Pick one task and give it 25 minutes.",
	"Consistency beats intensity. Keep your streak alive today.",
	"Done is better than perfect. Finish the task in front of you.",
	"A short break now can save a long slump later.",
	"Your future self will thank you for the next focused session.",
}

var fallbackSuggestions = map[string][]string{
	"happy":   {"Ride the momentum: tackle your hardest task now", "Share a win with someone", "Queue up a longer focus session"},
	"calm":    {"Good time for deep work", "Plan tomorrow while your head is clear", "Start a 25 minute session"},
	"tired":   {"Take a short walk before the next session", "Switch to a lighter task", "Consider a longer break"},
	"anxious": {"Break the next task into smaller pieces", "Try a 5 minute breathing break", "Start with something easy to build momentum"},
	"sad":     {"Be kind to yourself today", "Pick one small task to finish", "Step outside for a few minutes"},
	"neutral": {"Set an intention for the next hour", "Review your task list", "Start a standard Pomodoro"},
}

// Coach returns model-generated advice, or a stock message when the
// service cannot answer.
func (s *Service) Coach(ctx context.Context, in CoachingInput) *CoachingAdvice {
	if s.enabled {
		if advice, err := s.client.Coach(ctx, in); err == nil && advice.Message != "" {
			return advice
		}
	}
	return &CoachingAdvice{Message: fallbackMessages[s.pick(len(fallbackMessages))]}
}

// RecommendPomodoro returns a model recommendation, or the stock 25/5
// split when the service cannot answer.
func (s *Service) RecommendPomodoro(ctx context.Context, sessions []SessionSample) *PomodoroRecommendation {
	if s.enabled {
		if rec, err := s.client.RecommendPomodoro(ctx, sessions); err == nil && rec.WorkMinutes > 0 {
			return rec
		}
	}
	return &PomodoroRecommendation{
		WorkMinutes:  25,
		BreakMinutes: 5,
		Confidence:   0,
		Reasoning:    DefaultRecommendationReason,
	}
}

// Available reports whether the model service is reachable. Always false
// when the service is disabled.
func (s *Service) Available(ctx context.Context) bool {
	return s.enabled && s.client.Available(ctx)
}

// MoodSuggestions returns model suggestions for the mood, or the static
// table when the service cannot answer.
func (s *Service) MoodSuggestions(ctx context.Context, mood string) []string {
	if s.enabled {
		if suggestions, err := s.client.MoodSuggestions(ctx, mood); err == nil && len(suggestions) > 0 {
			return suggestions
		}
	}
	if suggestions, ok := fallbackSuggestions[mood]; ok {
		return suggestions
	}
	return fallbackSuggestions["neutral"]
}
