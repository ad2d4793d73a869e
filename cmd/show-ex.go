package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/prompt"
	"github.com/misterclayt0n/fitlog/internal/storage"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var (
	limitEntries int
	historyOnly  bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display the logged history of one exercise across workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exName := args[0]

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		records := st.ListExerciseHistory(ctx, exName, limitEntries)

		// Define color functions.
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		if len(records) == 0 {
			fmt.Println(magenta(fmt.Sprintf("No history found for %s.", exName)))
			return nil
		}

		if !historyOnly {
			fmt.Println(boldGreen("Exercise Information:"))
			fmt.Printf("  %s: %s\n", boldCyan("Name"), records[0].Exercise.Name)
			fmt.Printf("  %s: %s\n", boldCyan("Type"), records[0].Exercise.Type())
			fmt.Printf("  %s: %s\n", boldCyan("Last performed"), utils.FormatDate(records[0].Date))
			if best, ok := bestSet(records); ok {
				f := best.Exercise.Fields()
				fmt.Printf("  %s: %s lbs × %d (%s: %.1f lbs)\n",
					boldCyan("Best set"),
					prompt.FormatNumber(*f.Weight), *f.Reps,
					yellow("Calculated 1RM"), utils.CalculateEpley1RM(*f.Weight, *f.Reps))
			}
			fmt.Println()
		}

		fmt.Printf("%s %s:\n", boldGreen("History for"), records[0].Exercise.Name)
		fmt.Printf("   %-12s | %-20s | %s\n", "Date", "Workout", "Details")
		fmt.Println("   " + strings.Repeat("─", 60))
		for _, rec := range records {
			details := prompt.ExerciseDetails(rec.Exercise)
			if details == "" {
				details = "-"
			}
			fmt.Printf("   %-12s | %-20s | %s\n", rec.Date, truncate(rec.Workout, 20), details)
		}

		return nil
	},
}

// bestSet returns the strength record with the highest estimated 1RM.
func bestSet(records []storage.ExerciseRecord) (storage.ExerciseRecord, bool) {
	var (
		best   storage.ExerciseRecord
		bestRM float64
		found  bool
	)
	for _, rec := range records {
		if rec.Exercise.Type() != models.ExerciseTypeStrength {
			continue
		}
		f := rec.Exercise.Fields()
		if f.Weight == nil || f.Reps == nil {
			continue
		}
		if rm := utils.CalculateEpley1RM(*f.Weight, *f.Reps); !found || rm > bestRM {
			best, bestRM, found = rec, rm, true
		}
	}
	return best, found && bestRM > 0
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitEntries, "limit", "l", 10, "Number of entries to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only the history table")
}
