package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focuswave/internal/coach"
	"focuswave/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show points, streak, badges and recent focus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile := app.Profile.Profile()
			fmt.Println(titleStyle.Render("focuswave stats"))
			fmt.Println()
			fmt.Printf("Level %d  ·  %d points (%d lifetime)\n",
				profile.Level(), profile.Points, profile.TotalPoints)
			fmt.Printf("Streak: %d day(s)\n", profile.Streak)

			if len(profile.UnlockedBadges) > 0 {
				names := badgeNames(profile.UnlockedBadges)
				fmt.Println("Badges: " + badgeStyle.Render(strings.Join(names, ", ")))
			} else {
				fmt.Println(dimStyle.Render("No badges yet."))
			}

			stats, err := app.Sessions.StatsByDay(ctx, app.UserID, days)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("Focus minutes, last %d days:\n", days)
			maxMinutes := 0
			for _, day := range stats {
				if day.Minutes > maxMinutes {
					maxMinutes = day.Minutes
				}
			}
			for _, day := range stats {
				bar := ""
				if maxMinutes > 0 {
					bar = renderBar(day.Minutes, maxMinutes, 20)
				}
				fmt.Printf("  %s  %4d  %s\n", day.Date, day.Minutes, bar)
			}

			advice := app.Coach.Coach(ctx, coach.CoachingInput{Streak: profile.Streak})
			fmt.Println()
			fmt.Println(dimStyle.Render(advice.Message))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window size in days")

	return cmd
}

func badgeNames(ids []string) []string {
	byID := make(map[string]string)
	for _, b := range domain.BadgeCatalog() {
		byID[b.ID] = b.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
			continue
		}
		names = append(names, id)
	}
	return names
}
