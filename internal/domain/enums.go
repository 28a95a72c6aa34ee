package domain

// Phase is the Pomodoro phase the timer is currently in.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// SessionType is the persisted category of a completed focus session.
// Short and long breaks collapse to the same category.
type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// SessionTypeFor maps a timer phase to its persisted session category.
func SessionTypeFor(p Phase) SessionType {
	if p == PhaseWork {
		return SessionWork
	}
	return SessionBreak
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "completed": true,
}

// ValidTaskPriorities is the canonical set of accepted task priority strings.
var ValidTaskPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodTired   Mood = "tired"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
)

// ValidMoods is the fixed mood label set accepted by the mood journal.
var ValidMoods = map[string]bool{
	"happy": true, "calm": true, "tired": true,
	"anxious": true, "sad": true, "neutral": true,
}
