package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCatalog_HasFiveEntries(t *testing.T) {
	catalog := BadgeCatalog()
	assert.Len(t, catalog, 5)

	ids := make(map[string]bool)
	for _, b := range catalog {
		ids[b.ID] = true
	}
	for _, want := range []string{"first_task", "focus_master", "week_warrior", "month_legend", "point_king"} {
		assert.True(t, ids[want], "catalog missing %s", want)
	}
}

func TestNewlyUnlocked_PointThresholds(t *testing.T) {
	assert.Empty(t, NewlyUnlocked(9, 0, nil))
	assert.Equal(t, []string{"first_task"}, NewlyUnlocked(10, 0, nil))
	assert.ElementsMatch(t,
		[]string{"first_task", "focus_master"},
		NewlyUnlocked(1000, 0, nil))
	assert.ElementsMatch(t,
		[]string{"first_task", "focus_master", "point_king"},
		NewlyUnlocked(10000, 0, nil))
}

func TestNewlyUnlocked_StreakThresholds(t *testing.T) {
	assert.Empty(t, NewlyUnlocked(0, 6, nil))
	assert.Equal(t, []string{"week_warrior"}, NewlyUnlocked(0, 7, nil))
	assert.ElementsMatch(t,
		[]string{"week_warrior", "month_legend"},
		NewlyUnlocked(0, 30, nil))
}

func TestNewlyUnlocked_SkipsAlreadyUnlocked(t *testing.T) {
	got := NewlyUnlocked(1000, 7, []string{"first_task", "week_warrior"})
	assert.Equal(t, []string{"focus_master"}, got)
}
