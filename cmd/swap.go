package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [other-index]",
	Short: "Swap the order of two exercises in the current workout draft",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		a, err := parseExerciseIndex(args[0], len(draft.Exercises))
		if err != nil {
			return err
		}
		b, err := parseExerciseIndex(args[1], len(draft.Exercises))
		if err != nil {
			return err
		}

		draft.Exercises[a], draft.Exercises[b] = draft.Exercises[b], draft.Exercises[a]

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Printf("✅ Swapped %s and %s\n", draft.Exercises[b].Name, draft.Exercises[a].Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
