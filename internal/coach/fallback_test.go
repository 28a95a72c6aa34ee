package coach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	advice      *CoachingAdvice
	rec         *PomodoroRecommendation
	suggestions []string
	err         error
}

func (c *stubClient) Coach(context.Context, CoachingInput) (*CoachingAdvice, error) {
	return c.advice, c.err
}

func (c *stubClient) RecommendPomodoro(context.Context, []SessionSample) (*PomodoroRecommendation, error) {
	return c.rec, c.err
}

func (c *stubClient) MoodSuggestions(context.Context, string) ([]string, error) {
	return c.suggestions, c.err
}

func (c *stubClient) Available(context.Context) bool { return c.err == nil }

func TestService_PassesThroughModelAnswers(t *testing.T) {
	svc := NewService(&stubClient{
		advice:      &CoachingAdvice{Message: "model says hi"},
		rec:         &PomodoroRecommendation{WorkMinutes: 30, BreakMinutes: 6, Confidence: 0.9, Reasoning: "history"},
		suggestions: []string{"from the model"},
	}, true)
	ctx := context.Background()

	assert.Equal(t, "model says hi", svc.Coach(ctx, CoachingInput{}).Message)

	rec := svc.RecommendPomodoro(ctx, nil)
	assert.Equal(t, 30, rec.WorkMinutes)
	assert.InDelta(t, 0.9, rec.Confidence, 1e-9)

	assert.Equal(t, []string{"from the model"}, svc.MoodSuggestions(ctx, "tired"))
}

func TestService_FallsBackWhenUnavailable(t *testing.T) {
	svc := NewService(&stubClient{err: ErrUnavailable}, true)
	svc.pick = func(int) int { return 0 }
	ctx := context.Background()

	advice := svc.Coach(ctx, CoachingInput{})
	assert.Equal(t, fallbackMessages[0], advice.Message)

	rec := svc.RecommendPomodoro(ctx, nil)
	assert.Equal(t, 25, rec.WorkMinutes)
	assert.Equal(t, 5, rec.BreakMinutes)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, DefaultRecommendationReason, rec.Reasoning)

	suggestions := svc.MoodSuggestions(ctx, "tired")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, fallbackSuggestions["tired"], suggestions)
}

func TestService_DisabledNeverCallsModel(t *testing.T) {
	svc := NewService(&stubClient{advice: &CoachingAdvice{Message: "should not be used"}}, false)
	svc.pick = func(int) int { return 1 }

	advice := svc.Coach(context.Background(), CoachingInput{})
	assert.Equal(t, fallbackMessages[1], advice.Message)
}

func TestService_UnknownMoodFallsBackToNeutral(t *testing.T) {
	svc := NewService(&stubClient{err: ErrUnavailable}, true)

	suggestions := svc.MoodSuggestions(context.Background(), "confused")
	assert.Equal(t, fallbackSuggestions["neutral"], suggestions)
}
