package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/domain"
)

func writeError(c *gin.Context, apiErr *APIError) {
	errorBody := gin.H{
		"code":    apiErr.Code,
		"message": apiErr.Message,
	}
	if apiErr.Details != nil {
		errorBody["details"] = apiErr.Details
	}
	c.JSON(apiErr.Status, gin.H{"error": errorBody})
}

func abortWithError(c *gin.Context, apiErr *APIError) {
	errorBody := gin.H{
		"code":    apiErr.Code,
		"message": apiErr.Message,
	}
	if apiErr.Details != nil {
		errorBody["details"] = apiErr.Details
	}
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": errorBody})
}

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tag         string     `json:"tag,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	OrderIndex  int        `json:"orderIndex"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Tag:         t.Tag,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		OrderIndex:  t.OrderIndex,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

type moodLogResponse struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMoodLogResponse(m *domain.MoodLog) moodLogResponse {
	return moodLogResponse{
		ID:        m.ID,
		Mood:      string(m.Mood),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

type sessionResponse struct {
	ID              string    `json:"id"`
	SessionType     string    `json:"sessionType"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

func toSessionResponse(s *domain.FocusSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		SessionType:     string(s.SessionType),
		DurationSeconds: s.DurationSeconds,
		CompletedAt:     s.CompletedAt,
	}
}

type profileResponse struct {
	Points           int      `json:"points"`
	TotalPoints      int      `json:"totalPoints"`
	Level            int      `json:"level"`
	Streak           int      `json:"streak"`
	LastActivityDate string   `json:"lastActivityDate,omitempty"`
	UnlockedBadges   []string `json:"unlockedBadges"`
}

func toProfileResponse(p *domain.GamificationProfile) profileResponse {
	badges := p.UnlockedBadges
	if badges == nil {
		badges = []string{}
	}
	return profileResponse{
		Points:           p.Points,
		TotalPoints:      p.TotalPoints,
		Level:            p.Level(),
		Streak:           p.Streak,
		LastActivityDate: p.LastActivityDate,
		UnlockedBadges:   badges,
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
