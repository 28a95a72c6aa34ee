package service

import (
	"math"
	"time"
)

const dayFormat = "2006-01-02"

// dayWindow returns the start of the reporting window and the ordered
// day keys it covers: the last `days` calendar days ending today, in
// the given location.
func dayWindow(now time.Time, days int, loc *time.Location) (time.Time, []string) {
	if days < 1 {
		days = 1
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(days - 1))

	keys := make([]string, 0, days)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dayFormat))
	}
	return start, keys
}

// round1 rounds to one decimal place for report payloads.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
