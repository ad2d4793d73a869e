package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var cancelWorkoutCmd = &cobra.Command{
	Use:   "cancel-workout",
	Short: "Discard the current workout draft without saving anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.DraftExists() {
			return fmt.Errorf("No workout in progress to cancel")
		}

		if err := utils.ClearDraft(); err != nil {
			return fmt.Errorf("Failed to cancel workout: %w", err)
		}

		fmt.Println("✅ Workout cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelWorkoutCmd)
}
