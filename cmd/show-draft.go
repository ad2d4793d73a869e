package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

var showDraftCmd = &cobra.Command{
	Use:   "show-draft",
	Short: "Show the workout currently being logged",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return fmt.Errorf("Failed to load draft: %w", err)
		}

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		fmt.Printf("%s\n", green(draft.Name))
		fmt.Printf("%s %s\n", cyan("Date:"), utils.FormatDate(draft.Date))
		fmt.Printf("%s %s\n", red("Elapsed:"), time.Since(draft.StartTime).Round(time.Second))
		if draft.Duration != nil {
			fmt.Printf("%s %d min\n", red("Duration:"), *draft.Duration)
		}
		if draft.Notes != "" {
			fmt.Printf("%s %s\n", magenta("Notes:"), draft.Notes)
		}
		fmt.Println()

		if len(draft.Exercises) == 0 {
			fmt.Println(magenta("No exercises yet, add one with 'fitlog add-exercise'."))
			return nil
		}

		for i, ex := range draft.Exercises {
			ne := ex.ToNewExercise(0)
			details := detailsOf(models.Exercise{Name: ne.Name, Metrics: ne.Metrics})
			fmt.Printf("%s %s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(ex.Name), details)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showDraftCmd)
}
