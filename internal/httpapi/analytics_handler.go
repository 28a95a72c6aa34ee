package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuswave/internal/service"
)

type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) FocusMinutes(c *gin.Context) {
	days := intQuery(c, "days", 7)
	out, err := h.analytics.FocusMinutes(c.Request.Context(), UserID(c), days)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) TaskThroughput(c *gin.Context) {
	days := intQuery(c, "days", 7)
	out, err := h.analytics.TaskThroughput(c.Request.Context(), UserID(c), days)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) MoodFocus(c *gin.Context) {
	days := intQuery(c, "days", 30)
	report, err := h.analytics.MoodFocus(c.Request.Context(), UserID(c), days)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}
