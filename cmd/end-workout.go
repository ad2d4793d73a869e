package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/logbook"
	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var endWorkoutCmd = &cobra.Command{
	Use:   "end-workout",
	Short: "Save the current workout draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		if draft.Duration == nil {
			if elapsed := draft.Elapsed(time.Now()); elapsed > 0 {
				draft.Duration = &elapsed
			}
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		workoutID, err := newService(st).SaveDraft(ctx, draft)
		if err != nil {
			var partial *logbook.PartialSaveError
			if errors.As(err, &partial) {
				// The workout row exists, keeping the draft would save it twice.
				_ = utils.ClearDraft()
				printUnsaved(partial)
				return fmt.Errorf("Workout %d saved with missing exercises: %w", workoutID, partial.Err)
			}
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		if err := utils.ClearDraft(); err != nil {
			return fmt.Errorf("Failed to clear draft: %w", err)
		}

		fmt.Printf("✅ Workout saved successfully (id %d)\n", workoutID)
		return nil
	},
}

// printUnsaved lists the exercises a partial save dropped, each as the
// log-exercise command that re-adds it.
func printUnsaved(partial *logbook.PartialSaveError) {
	fmt.Printf("⚠️  %d exercise(s) were not saved. Re-add them with:\n", len(partial.Unsaved))
	for _, ex := range partial.Unsaved {
		fmt.Printf("  %s\n", logExerciseCommand(partial.WorkoutID, ex))
	}
}

func logExerciseCommand(workoutID int64, ex models.DraftExercise) string {
	parts := []string{
		"fitlog log-exercise", strconv.FormatInt(workoutID, 10),
		"--name", strconv.Quote(ex.Name),
	}
	if ex.Type != "" {
		parts = append(parts, "--type", string(ex.Type))
	}
	flags := []struct {
		name  string
		value string
	}{
		{"sets", formatInt(ex.Sets)},
		{"reps", formatInt(ex.Reps)},
		{"weight", formatFloat(ex.Weight)},
		{"distance", formatFloat(ex.Distance)},
		{"duration", formatInt(ex.Duration)},
	}
	for _, f := range flags {
		if f.value != "" {
			parts = append(parts, "--"+f.name, f.value)
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(endWorkoutCmd)
}
