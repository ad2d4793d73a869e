package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var editExerciseFlags exerciseFlags

var editExerciseCmd = &cobra.Command{
	Use:   "edit-exercise [exercise-index]",
	Short: "Edit an exercise in the current workout draft",
	Long:  "Edit an exercise in the current workout draft. Only the flags you pass change; pass an empty value (e.g. --weight \"\") to clear a metric.",
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

		ex, err := models.ParseExerciseInput(editExerciseFlags.overlay(cmd, draft.Exercises[exIdx]))
		if err != nil {
			return err
		}

		draft.Exercises[exIdx] = models.NewDraftExercise(ex)
		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Println("✅ Exercise updated successfully")
		return nil
	},
}

func init() {
	editExerciseFlags.bind(editExerciseCmd)
	rootCmd.AddCommand(editExerciseCmd)
}
