package domain

import "time"

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Tag         string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     *time.Time
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Completed reports whether the task has been marked done.
func (t *Task) Completed() bool {
	return t.Status == TaskCompleted
}
