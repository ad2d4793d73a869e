package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
)

var logExerciseFlags exerciseFlags

var logExerciseCmd = &cobra.Command{
	Use:   "log-exercise [workout-id]",
	Short: "Append an exercise to a workout that is already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || workoutID < 1 {
			return fmt.Errorf("Invalid workout id %q", args[0])
		}

		ex, err := models.ParseExerciseInput(logExerciseFlags.input)
		if err != nil {
			return err
		}
		ex.WorkoutID = workoutID

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		// Storage accepts any workout id, so check here.
		exists, err := st.WorkoutExists(ctx, workoutID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("Workout %d does not exist", workoutID)
		}

		id, err := st.CreateExercise(ctx, ex)
		if err != nil {
			return fmt.Errorf("Failed to log exercise: %w", err)
		}

		fmt.Printf("✅ Logged %s to workout %d (exercise %d)\n", ex.Name, workoutID, id)
		return nil
	},
}

func init() {
	logExerciseFlags.bind(logExerciseCmd)
	logExerciseCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(logExerciseCmd)
}
