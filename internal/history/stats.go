// Package history computes dashboard statistics over a snapshot of stored
// workouts. Nothing here touches storage.
package history

import (
	"fmt"
	"math"
	"time"

	"github.com/misterclayt0n/fitlog/internal/models"
)

const dayMillis = 24 * 60 * 60 * 1000

type Summary struct {
	TotalWorkouts int
	DaysSinceLast int
	TotalHours    int
	WeekStreak    int
}

func Summarize(workouts []models.Workout, now time.Time) Summary {
	return Summary{
		TotalWorkouts: TotalCount(workouts),
		DaysSinceLast: DaysSinceLast(workouts, now),
		TotalHours:    TotalTrainedHours(workouts),
		WeekStreak:    WeekStreak(workouts, now),
	}
}

func TotalCount(workouts []models.Workout) int {
	return len(workouts)
}

// DaysSinceLast returns the whole days between the most recent workout, which
// must be first in the slice, and the calendar day of now. Dates that do not
// parse count as 0.
func DaysSinceLast(workouts []models.Workout, now time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	last, err := parseDate(workouts[0].Date)
	if err != nil {
		return 0
	}

	diff := calendarDay(now).Sub(last).Milliseconds()
	return int(math.Round(float64(diff) / dayMillis))
}

// TotalTrainedHours sums the recorded durations and rounds to whole hours.
// Workouts without a duration count as zero minutes.
func TotalTrainedHours(workouts []models.Workout) int {
	minutes := 0
	for _, w := range workouts {
		if w.Duration != nil {
			minutes += *w.Duration
		}
	}
	return int(math.Round(float64(minutes) / 60))
}

// WeekStreak counts consecutive ISO weeks, ending with the week of now, that
// contain at least one workout.
func WeekStreak(workouts []models.Workout, now time.Time) int {
	weeks := make(map[string]bool)
	for _, w := range workouts {
		d, err := parseDate(w.Date)
		if err != nil {
			continue
		}
		weeks[weekKey(d)] = true
	}

	streak := 0
	day := calendarDay(now)
	for weeks[weekKey(day)] {
		streak++
		day = day.AddDate(0, 0, -7)
	}
	return streak
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// calendarDay is midnight UTC of the date now shows in its own location.
func calendarDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}
