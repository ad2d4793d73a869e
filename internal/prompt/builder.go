// Package prompt turns preferences and recent workout history into the text
// sent to the workout generator.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/fitlog/internal/models"
)

// WindowSize is how many recent workouts are included in a prompt.
const WindowSize = 5

const (
	historyHeading = "\n\nRecent workout history:\n"
	historyClosing = "\nPlease consider this history to avoid repetition and ensure progressive overload where appropriate."
	formatFooter   = "\n\nFormat the response as a structured workout with:\n" +
		"1. Warm-up (5-10 minutes)\n" +
		"2. Main workout with specific exercises, sets, reps, and rest periods\n" +
		"3. Cool-down (5-10 minutes)\n\n" +
		"Include brief explanations for exercise selection and any modifications for different fitness levels."
)

// Build renders the generation request. The window is expected newest first
// and is used as given.
func Build(prefs models.Preferences, window []models.WorkoutWithExercises) string {
	var sb strings.Builder

	fmt.Fprintf(&sb,
		"Generate a %s-minute %s intensity %s workout for someone with %s experience level using %s equipment.",
		prefs.Duration, prefs.Intensity, prefs.Focus, prefs.Experience, prefs.Equipment,
	)

	if len(window) > 0 {
		sb.WriteString(historyHeading)
		for i, w := range window {
			fmt.Fprintf(&sb, "%d. %s (%s):\n", i+1, w.Name, w.Date)
			for _, ex := range w.Exercises {
				writeExercise(&sb, ex)
			}
		}
		sb.WriteString(historyClosing)
	}

	sb.WriteString(formatFooter)
	return sb.String()
}

func writeExercise(sb *strings.Builder, ex models.Exercise) {
	f := ex.Fields()

	sb.WriteString("   - ")
	sb.WriteString(ex.Name)
	if present(f.Sets) && present(f.Reps) {
		fmt.Fprintf(sb, " (%d sets × %d reps", *f.Sets, *f.Reps)
		if presentFloat(f.Weight) {
			fmt.Fprintf(sb, " @ %s lbs", FormatNumber(*f.Weight))
		}
		sb.WriteString(")")
	}
	if present(f.Duration) {
		fmt.Fprintf(sb, " (%d min)", *f.Duration)
	}
	sb.WriteString("\n")
}

// ExerciseDetails is the one-line summary of an exercise's metrics used in
// history listings, e.g. "3 sets × 10 reps • 135 lbs".
func ExerciseDetails(ex models.Exercise) string {
	f := ex.Fields()

	var parts []string
	if present(f.Sets) && present(f.Reps) {
		parts = append(parts, fmt.Sprintf("%d sets × %d reps", *f.Sets, *f.Reps))
	}
	if presentFloat(f.Weight) {
		parts = append(parts, FormatNumber(*f.Weight)+" lbs")
	}
	if presentFloat(f.Distance) {
		parts = append(parts, FormatNumber(*f.Distance)+" miles")
	}
	if present(f.Duration) {
		parts = append(parts, fmt.Sprintf("%d min", *f.Duration))
	}
	return strings.Join(parts, " • ")
}

// FormatNumber prints a float in its shortest form: 135, 132.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// A zero metric is treated the same as a missing one.
func present(v *int) bool {
	return v != nil && *v != 0
}

func presentFloat(v *float64) bool {
	return v != nil && *v != 0
}
