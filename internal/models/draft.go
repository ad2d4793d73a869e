package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// WorkoutDraft is the in-progress workout kept on disk until it is ended.
type WorkoutDraft struct {
	DraftID   string          `toml:"draft_id"`
	Name      string          `toml:"name"`
	Date      string          `toml:"date"`
	Duration  *int            `toml:"duration,omitempty"`
	Notes     string          `toml:"notes"`
	StartTime time.Time       `toml:"start_time"`
	Exercises []DraftExercise `toml:"exercises"`
}

type DraftExercise struct {
	Name     string       `toml:"name"`
	Type     ExerciseType `toml:"type"`
	Sets     *int         `toml:"sets,omitempty"`
	Reps     *int         `toml:"reps,omitempty"`
	Weight   *float64     `toml:"weight,omitempty"`
	Distance *float64     `toml:"distance,omitempty"`
	Duration *int         `toml:"duration,omitempty"`
}

func NewDraftExercise(e NewExercise) DraftExercise {
	f := e.Fields()
	return DraftExercise{
		Name:     e.Name,
		Type:     e.Type(),
		Sets:     f.Sets,
		Reps:     f.Reps,
		Weight:   f.Weight,
		Distance: f.Distance,
		Duration: f.Duration,
	}
}

// ToNewExercise attaches the draft exercise to a stored workout.
func (d DraftExercise) ToNewExercise(workoutID int64) NewExercise {
	t := d.Type
	if !t.IsValid() {
		t = ExerciseTypeStrength
	}
	return NewExercise{
		WorkoutID: workoutID,
		Name:      d.Name,
		Metrics: MetricsFor(t, MetricFields{
			Sets:     d.Sets,
			Reps:     d.Reps,
			Weight:   d.Weight,
			Distance: d.Distance,
			Duration: d.Duration,
		}),
	}
}

func (d *WorkoutDraft) ToNewWorkout() NewWorkout {
	return NewWorkout{
		Date:     d.Date,
		Name:     d.Name,
		Duration: d.Duration,
		Notes:    d.Notes,
	}
}

// Elapsed returns the whole minutes since the draft was started.
func (d *WorkoutDraft) Elapsed(now time.Time) int {
	if d.StartTime.IsZero() || now.Before(d.StartTime) {
		return 0
	}
	return int(now.Sub(d.StartTime).Minutes())
}

// Validate checks a draft read from a file, reporting every problem found.
func (d *WorkoutDraft) Validate() error {
	var errs error

	if strings.TrimSpace(d.Name) == "" {
		errs = multierr.Append(errs, invalid("name", "", "is required"))
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		errs = multierr.Append(errs, invalid("date", d.Date, "must be YYYY-MM-DD"))
	}
	if d.Duration != nil && *d.Duration < 0 {
		errs = multierr.Append(errs, invalid("duration", strconv.Itoa(*d.Duration), "must not be negative"))
	}

	for i, ex := range d.Exercises {
		field := func(name string) string { return fmt.Sprintf("exercises[%d].%s", i, name) }

		if strings.TrimSpace(ex.Name) == "" {
			errs = multierr.Append(errs, invalid(field("name"), "", "is required"))
		}
		switch ex.Type {
		case ExerciseTypeStrength, "":
			if ex.Distance != nil || ex.Duration != nil {
				errs = multierr.Append(errs, invalid(field("type"), "strength", "cannot have distance or duration"))
			}
		case ExerciseTypeCardio:
			if ex.Sets != nil || ex.Reps != nil || ex.Weight != nil {
				errs = multierr.Append(errs, invalid(field("type"), "cardio", "cannot have sets, reps or weight"))
			}
		default:
			errs = multierr.Append(errs, invalid(field("type"), string(ex.Type), "must be strength or cardio"))
		}
		for name, v := range map[string]*int{"sets": ex.Sets, "reps": ex.Reps, "duration": ex.Duration} {
			if v != nil && *v < 0 {
				errs = multierr.Append(errs, invalid(field(name), strconv.Itoa(*v), "must not be negative"))
			}
		}
		for name, v := range map[string]*float64{"weight": ex.Weight, "distance": ex.Distance} {
			if v != nil && *v < 0 {
				errs = multierr.Append(errs, invalid(field(name), strconv.FormatFloat(*v, 'f', -1, 64), "must not be negative"))
			}
		}
	}

	return errs
}
