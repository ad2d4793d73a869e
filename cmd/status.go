package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show totals: workouts logged, days since the last one, hours trained and week streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		dash := newService(st).Dashboard(ctx, time.Now())

		printBoxedHeader("STATUS")
		printMetric("Total workouts", dash.Summary.TotalWorkouts)
		printMetric("Days since last workout", dash.Summary.DaysSinceLast)
		printMetric("Hours trained", dash.Summary.TotalHours)
		printMetric("Week streak", fmt.Sprintf("%d weeks", dash.Summary.WeekStreak))
		fmt.Println()

		if utils.DraftExists() {
			fmt.Println(color.New(color.FgYellow).Sprint("A workout is in progress, see 'fitlog show-draft'."))
			fmt.Println()
		}

		header := color.New(color.FgGreen, color.Bold).Sprintf("Recent workouts:")
		fmt.Println(header)
		if len(dash.Recent) == 0 {
			fmt.Println("  No workouts yet. Start logging your fitness journey!")
			return nil
		}
		for _, w := range dash.Recent {
			duration := ""
			if w.Duration != nil {
				duration = fmt.Sprintf(" (%d min)", *w.Duration)
			}
			fmt.Printf("  • %s: %s%s\n", color.New(color.FgMagenta, color.Bold).Sprint(w.Name), utils.FormatDate(w.Date), duration)
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
