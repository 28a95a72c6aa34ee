package domain

// Badge is one entry of the static badge catalog. The Unlocks predicate is
// evaluated over the profile's lifetime point total and current streak.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Rarity      string
	Unlocks     func(totalPoints, streak int) bool
}

var badgeCatalog = []Badge{
	{
		ID:          "first_task",
		Name:        "First Task",
		Description: "Complete your first task",
		Icon:        "🎯",
		Rarity:      "common",
		Unlocks:     func(points, _ int) bool { return points >= 10 },
	},
	{
		ID:          "focus_master",
		Name:        "Focus Master",
		Description: "Accumulate 1000 focus points",
		Icon:        "🎯",
		Rarity:      "rare",
		Unlocks:     func(points, _ int) bool { return points >= 1000 },
	},
	{
		ID:          "week_warrior",
		Name:        "Week Warrior",
		Description: "Maintain a 7-day streak",
		Icon:        "🔥",
		Rarity:      "epic",
		Unlocks:     func(_, streak int) bool { return streak >= 7 },
	},
	{
		ID:          "month_legend",
		Name:        "Month Legend",
		Description: "Maintain a 30-day streak",
		Icon:        "👑",
		Rarity:      "legendary",
		Unlocks:     func(_, streak int) bool { return streak >= 30 },
	},
	{
		ID:          "point_king",
		Name:        "Point King",
		Description: "Reach 10,000 total points",
		Icon:        "💎",
		Rarity:      "legendary",
		Unlocks:     func(points, _ int) bool { return points >= 10000 },
	},
}

// BadgeCatalog returns the immutable badge catalog.
func BadgeCatalog() []Badge {
	out := make([]Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// NewlyUnlocked returns the ids of catalog badges whose predicate is
// satisfied by (totalPoints, streak) and which are not already in unlocked.
// Pure function; the caller unions the result into the profile.
func NewlyUnlocked(totalPoints, streak int, unlocked []string) []string {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}
	var out []string
	for _, b := range badgeCatalog {
		if !have[b.ID] && b.Unlocks(totalPoints, streak) {
			out = append(out, b.ID)
		}
	}
	return out
}
