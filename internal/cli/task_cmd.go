package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focuswave/internal/domain"
	"focuswave/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var priority, tag, description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Create(context.Background(), app.UserID, service.TaskInput{
				Title:       strings.Join(args, " "),
				Description: description,
				Tag:         tag,
				Priority:    priority,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added %q (%s)\n", task.Title, shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high")
	cmd.Flags().StringVar(&tag, "tag", "", "Free-form tag")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), app.UserID)
			if err != nil {
				return err
			}

			shown := 0
			for _, t := range tasks {
				if !all && t.Completed() {
					continue
				}
				shown++
				marker := "[ ]"
				if t.Completed() {
					marker = "[x]"
				}
				line := fmt.Sprintf("%s %s %s (%s)", marker, shortID(t.ID), t.Title, t.Priority)
				if t.Tag != "" {
					line += dimStyle.Render(" #" + t.Tag)
				}
				fmt.Println(line)
			}
			if shown == 0 {
				fmt.Println("No tasks. Add one with: focuswave task add <title>")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			status := string(domain.TaskCompleted)
			updated, err := app.Tasks.Update(ctx, app.UserID, task.ID, service.TaskUpdate{Status: &status})
			if err != nil {
				return err
			}
			if app.Profile != nil {
				app.Profile.Flush()
			}
			fmt.Printf("Completed %q\n", updated.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, app.UserID, task.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", task.Title)
			return nil
		},
	}
}

// resolveTask accepts a full id or an unambiguous id prefix.
func resolveTask(ctx context.Context, app *App, ref string) (*domain.Task, error) {
	tasks, err := app.Tasks.List(ctx, app.UserID)
	if err != nil {
		return nil, err
	}

	var match *domain.Task
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("task id %q is ambiguous", ref)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no task matching %q", ref)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
