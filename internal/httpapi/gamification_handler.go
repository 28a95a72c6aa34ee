package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
)

type GamificationHandler struct {
	profiles repository.ProfileRepo
}

func NewGamificationHandler(profiles repository.ProfileRepo) *GamificationHandler {
	return &GamificationHandler{profiles: profiles}
}

func (h *GamificationHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), UserID(c))
	if err != nil {
		// Accounts created before profile seeding existed start empty.
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, toProfileResponse(&domain.GamificationProfile{UserID: UserID(c)}))
			return
		}
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

type putProfileRequest struct {
	Points           int      `json:"points"`
	TotalPoints      int      `json:"totalPoints"`
	Streak           int      `json:"streak"`
	LastActivityDate string   `json:"lastActivityDate"`
	UnlockedBadges   []string `json:"unlockedBadges"`
}

func (h *GamificationHandler) PutProfile(c *gin.Context) {
	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}
	if req.Points < 0 || req.TotalPoints < 0 || req.Streak < 0 {
		writeError(c, BadRequest("validation_failed", "profile counters cannot be negative"))
		return
	}

	profile := &domain.GamificationProfile{
		UserID:           UserID(c),
		Points:           req.Points,
		TotalPoints:      req.TotalPoints,
		Streak:           req.Streak,
		LastActivityDate: req.LastActivityDate,
		UnlockedBadges:   req.UnlockedBadges,
	}

	// Lifetime totals and badge unlocks are monotonic; a stale client
	// snapshot must not roll them back.
	if existing, err := h.profiles.GetProfile(c.Request.Context(), UserID(c)); err == nil {
		if existing.TotalPoints > profile.TotalPoints {
			profile.TotalPoints = existing.TotalPoints
		}
		profile.UnlockedBadges = unionBadges(existing.UnlockedBadges, profile.UnlockedBadges)
	} else if !errors.Is(err, repository.ErrNotFound) {
		writeError(c, fromError(err))
		return
	}

	if err := h.profiles.UpsertProfile(c.Request.Context(), profile); err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func unionBadges(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, id := range existing {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range incoming {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

type badgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      string `json:"rarity"`
}

func (h *GamificationHandler) Badges(c *gin.Context) {
	catalog := domain.BadgeCatalog()
	out := make([]badgeResponse, 0, len(catalog))
	for _, b := range catalog {
		out = append(out, badgeResponse{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Rarity:      b.Rarity,
		})
	}
	c.JSON(http.StatusOK, out)
}
