package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/prompt"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var (
	historyLimit int
	filterName   string
	filterDay    string
)

// historyCmd lists stored workouts, newest first, with their exercises.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by name and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := newService(st)
		var workouts []models.WorkoutWithExercises
		if historyLimit > 0 && filterName == "" && filterDay == "" {
			workouts = svc.RecentHistory(ctx, historyLimit)
		} else {
			workouts = svc.FullHistory(ctx)
		}

		// Case insensitive filtering by workout name.
		if filterName != "" {
			var filtered []models.WorkoutWithExercises
			for _, w := range workouts {
				if strings.Contains(strings.ToLower(w.Name), strings.ToLower(filterName)) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if filterDay != "" {
			var filtered []models.WorkoutWithExercises
			for _, w := range workouts {
				if w.Date == filterDay {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if historyLimit > 0 && len(workouts) > historyLimit {
			workouts = workouts[:historyLimit]
		}

		if len(workouts) == 0 {
			fmt.Println(color.New(color.FgMagenta).Sprint("No workouts yet. Start logging your fitness journey!"))
			return nil
		}

		for _, w := range workouts {
			printWorkout(w)
		}
		return nil
	},
}

// printWorkout prints one workout card: header line, notes and exercises.
func printWorkout(w models.WorkoutWithExercises) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()

	header := fmt.Sprintf("%s %s", boldGreen(w.Name), cyan(fmt.Sprintf("#%d", w.ID)))
	fmt.Printf("%s  %s", header, utils.FormatDate(w.Date))
	if w.Duration != nil {
		fmt.Printf("  %s", yellow(fmt.Sprintf("%d min", *w.Duration)))
	}
	fmt.Println()

	if w.Notes != "" {
		fmt.Printf("   %s %s\n", magenta("Notes:"), w.Notes)
	}
	for _, ex := range w.Exercises {
		fmt.Printf("   • %s %s\n", ex.Name, detailsOf(ex))
	}
	fmt.Println()
}

// detailsOf returns the dimmed metric summary of an exercise, or "".
func detailsOf(ex models.Exercise) string {
	details := prompt.ExerciseDetails(ex)
	if details == "" {
		return ""
	}
	return color.New(color.Faint).Sprint(details)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Show at most this many workouts (0 shows all)")
	historyCmd.Flags().StringVarP(&filterName, "name", "n", "", "Filter by workout name (case insensitive, substring)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (YYYY-MM-DD)")
}
