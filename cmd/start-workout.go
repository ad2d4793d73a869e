package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var (
	workoutName     string
	workoutDate     string
	workoutDuration string
	workoutNotes    string
)

var startWorkoutCmd = &cobra.Command{
	Use:   "start-workout",
	Short: "Start a new workout draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.DraftExists() {
			return fmt.Errorf("A workout is already in progress, end or cancel it first")
		}

		if workoutDate == "" {
			workoutDate = utils.Today()
		}
		w, err := models.ParseWorkoutInput(models.WorkoutInput{
			Name:     workoutName,
			Date:     workoutDate,
			Duration: workoutDuration,
			Notes:    workoutNotes,
		})
		if err != nil {
			return err
		}

		draft := &models.WorkoutDraft{
			DraftID:   uuid.New().String(),
			Name:      w.Name,
			Date:      w.Date,
			Duration:  w.Duration,
			Notes:     w.Notes,
			StartTime: time.Now().UTC(),
		}
		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save draft: %w", err)
		}

		fmt.Printf("✅ Started workout %q on %s\n", draft.Name, draft.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startWorkoutCmd)

	startWorkoutCmd.Flags().StringVarP(&workoutName, "name", "n", "", "Workout name")
	startWorkoutCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "Workout date (YYYY-MM-DD, defaults to today)")
	startWorkoutCmd.Flags().StringVarP(&workoutDuration, "duration", "t", "", "Duration in minutes (defaults to elapsed time at end-workout)")
	startWorkoutCmd.Flags().StringVar(&workoutNotes, "notes", "", "Workout notes")
	startWorkoutCmd.MarkFlagRequired("name")
}
