package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/models"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the calendar grid.
// Days with workouts are printed with a color based on the workout name,
// and a legend is printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with a legend mapping colors to workouts",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		workouts := st.ListWorkoutsBetween(ctx,
			firstOfMonth.Format(models.DateLayout),
			lastOfMonth.Format(models.DateLayout),
		)

		// Group workouts by day and collect the names for the legend.
		workoutsByDay := make(map[int][]models.Workout)
		var names []string
		seen := make(map[string]bool)
		for _, w := range workouts {
			d, err := time.Parse(models.DateLayout, w.Date)
			if err != nil {
				continue
			}
			workoutsByDay[d.Day()] = append(workoutsByDay[d.Day()], w)

			name := strings.TrimSpace(w.Name)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		sort.Strings(names)

		// Define a fixed palette of colors.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		nameColors := make(map[string]func(a ...interface{}) string)
		for i, name := range names {
			nameColors[name] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if dayWorkouts, ok := workoutsByDay[day]; ok {
				// Use the first workout of that day for the color.
				dayStr = nameColors[strings.TrimSpace(dayWorkouts[0].Name)](dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(names) == 0 {
			fmt.Println("No workouts this month.")
			return nil
		}

		fmt.Println("Legend:")
		for _, name := range names {
			fmt.Printf("  %s: %s\n", nameColors[name]("██"), name)
		}

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range workoutsByDay[day] {
					fmt.Printf("  Workout #%d %s", w.ID, w.Name)
					if w.Duration != nil {
						fmt.Printf(" (%d min)", *w.Duration)
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print workout details for each training day")
}
