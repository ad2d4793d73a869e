package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/prompt"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

// exerciseFlags are the text flags shared by the commands that take an exercise.
type exerciseFlags struct {
	input models.ExerciseInput
}

func (f *exerciseFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input.Name, "name", "n", "", "Exercise name")
	cmd.Flags().StringVarP(&f.input.Type, "type", "T", "", "Exercise type: strength or cardio (default strength)")
	cmd.Flags().StringVarP(&f.input.Sets, "sets", "s", "", "Sets (strength)")
	cmd.Flags().StringVarP(&f.input.Reps, "reps", "r", "", "Reps per set (strength)")
	cmd.Flags().StringVarP(&f.input.Weight, "weight", "w", "", "Weight in lbs (strength)")
	cmd.Flags().StringVarP(&f.input.Distance, "distance", "D", "", "Distance in miles (cardio)")
	cmd.Flags().StringVarP(&f.input.Duration, "duration", "t", "", "Duration in minutes (cardio)")
}

// overlay fills in the flags the user did not pass from an existing exercise.
func (f *exerciseFlags) overlay(cmd *cobra.Command, ex models.DraftExercise) models.ExerciseInput {
	in := f.input
	keep := func(flag string, dst *string, value string) {
		if !cmd.Flags().Changed(flag) {
			*dst = value
		}
	}
	keep("name", &in.Name, ex.Name)
	keep("type", &in.Type, string(ex.Type))
	keep("sets", &in.Sets, formatInt(ex.Sets))
	keep("reps", &in.Reps, formatInt(ex.Reps))
	keep("weight", &in.Weight, formatFloat(ex.Weight))
	keep("distance", &in.Distance, formatFloat(ex.Distance))
	keep("duration", &in.Duration, formatInt(ex.Duration))
	return in
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return prompt.FormatNumber(*v)
}

var addExerciseFlags exerciseFlags

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Add an exercise to the current workout draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		ex, err := models.ParseExerciseInput(addExerciseFlags.input)
		if err != nil {
			return err
		}

		draft.Exercises = append(draft.Exercises, models.NewDraftExercise(ex))
		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Printf("✅ Added %s (#%d) to %s\n", ex.Name, len(draft.Exercises), draft.Name)
		return nil
	},
}

func init() {
	addExerciseFlags.bind(addExerciseCmd)
	addExerciseCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(addExerciseCmd)
}
