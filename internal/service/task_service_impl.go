package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"focuswave/internal/domain"
	"focuswave/internal/repository"
)

// TaskAwarder receives gamification credit when a task is completed.
type TaskAwarder interface {
	AwardTaskPoints()
}

type taskService struct {
	tasks   repository.TaskRepo
	awarder TaskAwarder
	now     func() time.Time
}

// NewTaskService builds the task use cases. awarder may be nil when no
// gamification engine is attached.
func NewTaskService(tasks repository.TaskRepo, awarder TaskAwarder) TaskService {
	return &taskService{tasks: tasks, awarder: awarder, now: time.Now}
}

func (s *taskService) Create(ctx context.Context, userID string, in TaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	priority := in.Priority
	if priority == "" {
		priority = string(domain.PriorityMedium)
	}
	if !domain.ValidTaskPriorities[priority] {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}

	now := s.now().UTC()
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: in.Description,
		Tag:         in.Tag,
		Priority:    domain.TaskPriority(priority),
		Status:      domain.TaskPending,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

func (s *taskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, userID, id string, in TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	wasCompleted := task.Completed()

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		task.Title = title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Tag != nil {
		task.Tag = *in.Tag
	}
	if in.Priority != nil {
		if !domain.ValidTaskPriorities[*in.Priority] {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *in.Priority)
		}
		task.Priority = domain.TaskPriority(*in.Priority)
	}
	if in.Status != nil {
		if !domain.ValidTaskStatuses[*in.Status] {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
		}
		task.Status = domain.TaskStatus(*in.Status)
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	} else if in.ClearDue {
		task.DueDate = nil
	}

	task.UpdatedAt = s.now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	// Points are granted on the pending -> completed transition only, so
	// re-saving a completed task never double-awards.
	if !wasCompleted && task.Completed() && s.awarder != nil {
		s.awarder.AwardTaskPoints()
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, userID, id)
}

func (s *taskService) Reorder(ctx context.Context, userID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: order must list at least one task", ErrValidation)
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			return fmt.Errorf("%w: duplicate task id %q in order", ErrValidation, id)
		}
		seen[id] = true
	}
	return s.tasks.Reorder(ctx, userID, orderedIDs)
}
