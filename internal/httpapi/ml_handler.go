package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/coach"
	"focuswave/internal/domain"
	"focuswave/internal/service"
)

// MLHandler exposes the coaching model endpoints. Every endpoint keeps
// working when the model service is down; the coach service degrades to
// static answers.
type MLHandler struct {
	coach     *coach.Service
	sessions  service.SessionService
	analytics service.AnalyticsService
}

func NewMLHandler(coachSvc *coach.Service, sessions service.SessionService, analytics service.AnalyticsService) *MLHandler {
	return &MLHandler{coach: coachSvc, sessions: sessions, analytics: analytics}
}

type coachRequest struct {
	Mood   string `json:"mood"`
	Streak int    `json:"streak"`
}

func (h *MLHandler) Coach(c *gin.Context) {
	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	userID := UserID(c)
	in := coach.CoachingInput{CurrentMood: req.Mood, Streak: req.Streak}
	if today, err := h.analytics.FocusMinutes(c.Request.Context(), userID, 1); err == nil && len(today) == 1 {
		in.FocusMinutesToday = float64(today[0].Minutes)
	}
	if throughput, err := h.analytics.TaskThroughput(c.Request.Context(), userID, 1); err == nil && len(throughput) == 1 {
		in.TasksCompletedToday = throughput[0].Completed
	}

	advice := h.coach.Coach(c.Request.Context(), in)
	c.JSON(http.StatusOK, advice)
}

func (h *MLHandler) RecommendPomodoro(c *gin.Context) {
	history, err := h.sessions.History(c.Request.Context(), UserID(c), 20)
	if err != nil {
		writeError(c, fromError(err))
		return
	}

	samples := make([]coach.SessionSample, 0, len(history))
	for _, s := range history {
		if s.SessionType != domain.SessionWork {
			continue
		}
		samples = append(samples, coach.SessionSample{
			DurationSeconds: s.DurationSeconds,
			CompletedAt:     s.CompletedAt.UTC().Format(time.RFC3339),
		})
	}

	rec := h.coach.RecommendPomodoro(c.Request.Context(), samples)
	c.JSON(http.StatusOK, rec)
}

type moodSuggestionsRequest struct {
	Mood string `json:"mood"`
}

func (h *MLHandler) MoodSuggestions(c *gin.Context) {
	var req moodSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	suggestions := h.coach.MoodSuggestions(c.Request.Context(), req.Mood)
	c.JSON(http.StatusOK, gin.H{"mood": req.Mood, "suggestions": suggestions})
}
