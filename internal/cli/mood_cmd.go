package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log and review moods",
	}

	cmd.AddCommand(
		newMoodLogCmd(app),
		newMoodListCmd(app),
	)

	return cmd
}

func newMoodLogCmd(app *App) *cobra.Command {
	var mood, note string

	cmd := &cobra.Command{
		Use:   "log [mood]",
		Short: "Log how you feel right now",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				mood = args[0]
			} else {
				if !app.IsInteractive() {
					return fmt.Errorf("pass a mood argument or run interactively")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewSelect[string]().
							Title("How are you feeling?").
							Options(
								huh.NewOption("Happy", "happy"),
								huh.NewOption("Calm", "calm"),
								huh.NewOption("Neutral", "neutral"),
								huh.NewOption("Tired", "tired"),
								huh.NewOption("Anxious", "anxious"),
								huh.NewOption("Sad", "sad"),
							).
							Value(&mood),
						huh.NewInput().
							Title("Note (optional)").
							Placeholder("what's on your mind").
							Value(&note),
					),
				).WithTheme(focuswaveHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			entry, err := app.Moods.Log(ctx, app.UserID, mood, note)
			if err != nil {
				return err
			}
			fmt.Printf("Logged mood: %s\n", entry.Mood)

			for _, suggestion := range app.Coach.MoodSuggestions(ctx, string(entry.Mood)) {
				fmt.Println(dimStyle.Render("  · " + suggestion))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}

func newMoodListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recent mood entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Moods.List(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("No mood entries yet.")
				return nil
			}
			for _, m := range logs {
				line := fmt.Sprintf("%s  %s", m.CreatedAt.Local().Format("Jan 02 15:04"), m.Mood)
				if m.Note != "" {
					line += dimStyle.Render("  " + m.Note)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
