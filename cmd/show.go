package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/storage"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var dateStr string

var showCmd = &cobra.Command{
	Use:   "show [workout-id]",
	Short: "Display a saved workout by its ID, or every workout on a day using --date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		magenta := color.New(color.FgMagenta).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		if dateStr != "" {
			day, err := time.Parse(models.DateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("Failed to parse date, please use YYYY-MM-DD format: %w", err)
			}

			workouts := st.ListWorkoutsByDate(ctx, day.Format(models.DateLayout))
			if len(workouts) == 0 {
				fmt.Println(magenta("No workouts found on that date."))
				return nil
			}
			for _, w := range workouts {
				printWorkout(models.WorkoutWithExercises{
					Workout:   w,
					Exercises: st.ListExercisesForWorkout(ctx, w.ID),
				})
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("Please provide a workout ID or use the --date flag")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid workout id %q", args[0])
		}

		w, err := st.GetWorkout(ctx, id)
		if errors.Is(err, storage.ErrWorkoutNotFound) {
			fmt.Println(magenta(fmt.Sprintf("No workout with id %d.", id)))
			return nil
		}
		if err != nil {
			return err
		}

		printWorkout(models.WorkoutWithExercises{
			Workout:   *w,
			Exercises: st.ListExercisesForWorkout(ctx, w.ID),
		})
		if !w.CreatedAt.IsZero() {
			fmt.Printf("%s %s\n", cyan("Logged at:"), utils.FormatLocal(w.CreatedAt))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&dateStr, "date", "d", "", "Show workouts on a day (YYYY-MM-DD)")
}
