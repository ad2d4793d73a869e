package models

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

const DateLayout = "2006-01-02"

// WorkoutInput is the raw text a user typed for a workout.
type WorkoutInput struct {
	Name     string
	Date     string
	Duration string
	Notes    string
}

// ExerciseInput is the raw text a user typed for an exercise. Blank numeric
// fields mean the metric is absent.
type ExerciseInput struct {
	Name     string
	Type     string
	Sets     string
	Reps     string
	Weight   string
	Distance string
	Duration string
}

// ParseWorkoutInput validates the text fields of a workout and converts them.
// Every invalid field is reported in the returned error.
func ParseWorkoutInput(in WorkoutInput) (NewWorkout, error) {
	var (
		out  NewWorkout
		errs error
	)

	out.Name = strings.TrimSpace(in.Name)
	if out.Name == "" {
		errs = multierr.Append(errs, invalid("name", "", "is required"))
	}

	out.Date = strings.TrimSpace(in.Date)
	if out.Date == "" {
		errs = multierr.Append(errs, invalid("date", "", "is required"))
	} else if _, err := time.Parse(DateLayout, out.Date); err != nil {
		errs = multierr.Append(errs, invalid("date", out.Date, "must be YYYY-MM-DD"))
	}

	duration, err := parseOptionalInt("duration", in.Duration, 0)
	errs = multierr.Append(errs, err)
	out.Duration = duration
	out.Notes = strings.TrimSpace(in.Notes)

	if errs != nil {
		return NewWorkout{}, errs
	}
	return out, nil
}

// ParseExerciseInput validates the text fields of an exercise. Metrics that do
// not belong to the exercise type are rejected rather than dropped.
func ParseExerciseInput(in ExerciseInput) (NewExercise, error) {
	var errs error

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = multierr.Append(errs, invalid("name", "", "is required"))
	}

	typ := ExerciseType(strings.ToLower(strings.TrimSpace(in.Type)))
	if typ == "" {
		typ = ExerciseTypeStrength
	}
	if !typ.IsValid() {
		errs = multierr.Append(errs, invalid("type", in.Type, "must be strength or cardio"))
		return NewExercise{}, errs
	}

	var metrics Metrics
	switch typ {
	case ExerciseTypeStrength:
		sets, err := parseOptionalInt("sets", in.Sets, 1)
		errs = multierr.Append(errs, err)
		reps, err := parseOptionalInt("reps", in.Reps, 1)
		errs = multierr.Append(errs, err)
		weight, err := parseOptionalFloat("weight", in.Weight)
		errs = multierr.Append(errs, err)
		errs = multierr.Append(errs, rejectForType("distance", in.Distance, typ))
		errs = multierr.Append(errs, rejectForType("duration", in.Duration, typ))
		metrics = StrengthMetrics{Sets: sets, Reps: reps, Weight: weight}
	case ExerciseTypeCardio:
		distance, err := parseOptionalFloat("distance", in.Distance)
		errs = multierr.Append(errs, err)
		duration, err := parseOptionalInt("duration", in.Duration, 0)
		errs = multierr.Append(errs, err)
		errs = multierr.Append(errs, rejectForType("sets", in.Sets, typ))
		errs = multierr.Append(errs, rejectForType("reps", in.Reps, typ))
		errs = multierr.Append(errs, rejectForType("weight", in.Weight, typ))
		metrics = CardioMetrics{Distance: distance, Duration: duration}
	}

	if errs != nil {
		return NewExercise{}, errs
	}
	return NewExercise{Name: name, Metrics: metrics}, nil
}

func parseOptionalInt(field, raw string, min int) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid(field, raw, "must be a whole number")
	}
	if v < min {
		return nil, invalid(field, raw, "must be at least "+strconv.Itoa(min))
	}
	return &v, nil
}

func parseOptionalFloat(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalid(field, raw, "must be a number")
	}
	if v < 0 {
		return nil, invalid(field, raw, "must not be negative")
	}
	return &v, nil
}

func rejectForType(field, raw string, t ExerciseType) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return invalid(field, raw, "not allowed for "+t.String()+" exercises")
}
