package models

import "time"

type Workout struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Name      string    `json:"name"`
	Duration  *int      `json:"duration,omitempty"` // minutes
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWorkout is the input of a create-workout operation.
type NewWorkout struct {
	Date     string
	Name     string
	Duration *int
	Notes    string
}

// WorkoutWithExercises is a read-only snapshot of a stored workout and its exercises.
type WorkoutWithExercises struct {
	Workout
	Exercises []Exercise `json:"exercises"`
}
