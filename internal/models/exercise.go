package models

type ExerciseType string

const (
	ExerciseTypeStrength ExerciseType = "strength"
	ExerciseTypeCardio   ExerciseType = "cardio"
)

func (t ExerciseType) String() string {
	return string(t)
}

func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeStrength, ExerciseTypeCardio:
		return true
	default:
		return false
	}
}

// Metrics is the type-dependent payload of an exercise. It is implemented only
// by StrengthMetrics and CardioMetrics.
type Metrics interface {
	Type() ExerciseType
	fields() MetricFields
}

type StrengthMetrics struct {
	Sets   *int     `json:"sets,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"` // lbs
}

func (StrengthMetrics) Type() ExerciseType { return ExerciseTypeStrength }

func (m StrengthMetrics) fields() MetricFields {
	return MetricFields{Sets: m.Sets, Reps: m.Reps, Weight: m.Weight}
}

type CardioMetrics struct {
	Distance *float64 `json:"distance,omitempty"` // miles
	Duration *int     `json:"duration,omitempty"` // minutes
}

func (CardioMetrics) Type() ExerciseType { return ExerciseTypeCardio }

func (m CardioMetrics) fields() MetricFields {
	return MetricFields{Distance: m.Distance, Duration: m.Duration}
}

// MetricFields is the flat column view of Metrics, used at the storage and
// rendering boundaries.
type MetricFields struct {
	Sets     *int
	Reps     *int
	Weight   *float64
	Distance *float64
	Duration *int
}

// MetricsFor builds the payload for the given type, keeping only the fields
// that belong to it.
func MetricsFor(t ExerciseType, f MetricFields) Metrics {
	if t == ExerciseTypeCardio {
		return CardioMetrics{Distance: f.Distance, Duration: f.Duration}
	}
	return StrengthMetrics{Sets: f.Sets, Reps: f.Reps, Weight: f.Weight}
}

type Exercise struct {
	ID        int64   `json:"id"`
	WorkoutID int64   `json:"workout_id"`
	Name      string  `json:"name"`
	Metrics   Metrics `json:"metrics"`
}

func (e Exercise) Type() ExerciseType {
	if e.Metrics == nil {
		return ExerciseTypeStrength
	}
	return e.Metrics.Type()
}

func (e Exercise) Fields() MetricFields {
	if e.Metrics == nil {
		return MetricFields{}
	}
	return e.Metrics.fields()
}

// NewExercise is the input of a create-exercise operation.
type NewExercise struct {
	WorkoutID int64
	Name      string
	Metrics   Metrics
}

func (e NewExercise) Type() ExerciseType {
	return Exercise{Metrics: e.Metrics}.Type()
}

func (e NewExercise) Fields() MetricFields {
	return Exercise{Metrics: e.Metrics}.Fields()
}
