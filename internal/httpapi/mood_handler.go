package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuswave/internal/service"
)

type MoodHandler struct {
	moods service.MoodService
}

func NewMoodHandler(moods service.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type moodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

func (h *MoodHandler) Log(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	entry, err := h.moods.Log(c.Request.Context(), UserID(c), req.Mood, req.Note)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusCreated, toMoodLogResponse(entry))
}

func (h *MoodHandler) List(c *gin.Context) {
	logs, err := h.moods.List(c.Request.Context(), UserID(c))
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	out := make([]moodLogResponse, 0, len(logs))
	for _, m := range logs {
		out = append(out, toMoodLogResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MoodHandler) Update(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	entry, err := h.moods.Update(c.Request.Context(), UserID(c), c.Param("id"), req.Mood, req.Note)
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toMoodLogResponse(entry))
}

func (h *MoodHandler) Delete(c *gin.Context) {
	if err := h.moods.Delete(c.Request.Context(), UserID(c), c.Param("id")); err != nil {
		writeError(c, fromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
