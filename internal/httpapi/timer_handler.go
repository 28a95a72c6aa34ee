package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/domain"
	"focuswave/internal/service"
)

type TimerHandler struct {
	sessions service.SessionService
}

func NewTimerHandler(sessions service.SessionService) *TimerHandler {
	return &TimerHandler{sessions: sessions}
}

type recordSessionRequest struct {
	SessionType     string     `json:"sessionType"`
	DurationSeconds int        `json:"durationSeconds"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (h *TimerHandler) RecordSession(c *gin.Context) {
	var req recordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	session := &domain.FocusSession{
		UserID:          UserID(c),
		SessionType:     domain.SessionType(req.SessionType),
		DurationSeconds: req.DurationSeconds,
	}
	if req.CompletedAt != nil {
		session.CompletedAt = *req.CompletedAt
	}
	if err := h.sessions.RecordSession(c.Request.Context(), session); err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h *TimerHandler) History(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	sessions, err := h.sessions.History(c.Request.Context(), UserID(c), limit)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TimerHandler) Stats(c *gin.Context) {
	days := intQuery(c, "days", 7)
	stats, err := h.sessions.StatsByDay(c.Request.Context(), UserID(c), days)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
