package storage

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorkout  = errors.New("workout name and date are required")
	ErrInvalidExercise = errors.New("exercise name is required")
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrEmptyDump       = errors.New("dump contains no workouts")
)

// InitError means the store could not be prepared. Nothing that depends on
// storage can run after it.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("storage init: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failed insert. Op names the operation that failed.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
