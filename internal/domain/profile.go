package domain

// PointsPerLevel is the total-point band covered by each level.
const PointsPerLevel = 1000

// GamificationProfile is the singleton per-user gamification state.
// Level is never stored; it is always derived from TotalPoints.
type GamificationProfile struct {
	UserID      string
	Points      int
	TotalPoints int
	Streak      int
	// LastActivityDate is the calendar day ("2006-01-02") the streak was
	// last extended or reset. Empty before the first activity.
	LastActivityDate string
	UnlockedBadges   []string
}

// Level derives the level for a given lifetime point total.
// 0-999 points is level 1, 1000-1999 is level 2, and so on.
func Level(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/PointsPerLevel + 1
}

// Level returns the profile's derived level.
func (p *GamificationProfile) Level() int {
	return Level(p.TotalPoints)
}

// HasBadge reports whether the badge id is already in the unlocked set.
func (p *GamificationProfile) HasBadge(id string) bool {
	for _, b := range p.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}
