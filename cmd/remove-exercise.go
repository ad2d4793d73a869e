package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var removeExerciseCmd = &cobra.Command{
	Use:   "remove-exercise [exercise-index]",
	Short: "Remove an exercise from the current workout draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		exIdx, err := parseExerciseIndex(args[0], len(draft.Exercises))
		if err != nil {
			return err
		}

		removed := draft.Exercises[exIdx]
		draft.Exercises = append(draft.Exercises[:exIdx], draft.Exercises[exIdx+1:]...)

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Printf("✅ Removed %s from the draft\n", removed.Name)
		return nil
	},
}

// parseExerciseIndex turns a 1-based index argument into a slice index.
func parseExerciseIndex(arg string, count int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid exercise index (should be 1-based)")
	}
	if idx > count {
		return 0, fmt.Errorf("Exercise index out of range, the draft has %d exercises", count)
	}
	return idx - 1, nil
}

func init() {
	rootCmd.AddCommand(removeExerciseCmd)
}
