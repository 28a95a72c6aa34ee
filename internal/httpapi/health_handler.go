package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/coach"
)

const healthProbeTimeout = 2 * time.Second

// HealthHandler reports server, database and model-service status.
type HealthHandler struct {
	db    *sql.DB
	coach *coach.Service
}

func NewHealthHandler(db *sql.DB, coachSvc *coach.Service) *HealthHandler {
	return &HealthHandler{db: db, coach: coachSvc}
}

func (h *HealthHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database connection failed",
		})
		return
	}

	mlStatus := "disconnected"
	if h.coach.Available(ctx) {
		mlStatus = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"database":   "connected",
		"ml_service": mlStatus,
	})
}
