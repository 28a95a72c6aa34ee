package domain

import "time"

type MoodLog struct {
	ID        string
	UserID    string
	Mood      Mood
	Note      string
	CreatedAt time.Time
}
