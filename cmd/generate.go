package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/generation"
	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var (
	prefs      = models.DefaultPreferences()
	dryRun     bool
	logAsDraft bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a workout plan informed by your recent history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if logAsDraft && utils.DraftExists() {
			return fmt.Errorf("A workout is already in progress, end or cancel it before using --log")
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := newService(st)
		cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()

		if dryRun {
			p, err := svc.BuildPrompt(ctx, prefs)
			if err != nil {
				return err
			}
			fmt.Println(cyanBold("Prompt:"))
			fmt.Println(p)
			return nil
		}

		fmt.Println(color.New(color.Faint).Sprint("Generating your personalized workout..."))
		plan, err := svc.PlanWorkout(ctx, prefs)
		if err != nil {
			var genErr *generation.Error
			if errors.As(err, &genErr) && errors.Is(err, generation.ErrMissingAPIKey) {
				return fmt.Errorf("%w: set OPENAI_API_KEY or [generation] api_key in config.toml", err)
			}
			return err
		}

		fmt.Println(cyanBold("Your Generated Workout"))
		fmt.Println(plan.Workout)

		if logAsDraft {
			draft := &models.WorkoutDraft{
				DraftID:   uuid.New().String(),
				Name:      fmt.Sprintf("Generated %s workout", prefs.Focus),
				Date:      utils.Today(),
				Notes:     plan.Workout,
				StartTime: time.Now().UTC(),
			}
			if err := utils.SaveDraft(draft); err != nil {
				return fmt.Errorf("Failed to save draft: %w", err)
			}
			fmt.Println()
			fmt.Printf("✅ Started workout %q, add exercises as you go with 'fitlog add-exercise'\n", draft.Name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&prefs.Duration, "duration", "t", prefs.Duration, "Workout length in minutes")
	generateCmd.Flags().StringVarP(&prefs.Intensity, "intensity", "i", prefs.Intensity, "light, moderate or intense")
	generateCmd.Flags().StringVarP(&prefs.Focus, "focus", "f", prefs.Focus, "full-body, upper-body, lower-body, cardio or strength")
	generateCmd.Flags().StringVarP(&prefs.Equipment, "equipment", "e", prefs.Equipment, "gym, home or bodyweight")
	generateCmd.Flags().StringVarP(&prefs.Experience, "experience", "x", prefs.Experience, "beginner, intermediate or advanced")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the prompt without calling the generator")
	generateCmd.Flags().BoolVar(&logAsDraft, "log", false, "Start a workout draft with the plan as its notes")
}
