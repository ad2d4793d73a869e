// Package logbook holds the flows the CLI drives: saving a drafted workout,
// reading recent history and planning a new workout from it.
package logbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/fitlog/internal/history"
	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/prompt"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=logbook_test

type workoutStore interface {
	CreateWorkout(ctx context.Context, w models.NewWorkout) (int64, error)
	CreateExercise(ctx context.Context, ex models.NewExercise) (int64, error)
	ListWorkouts(ctx context.Context) []models.Workout
	ListRecentWorkouts(ctx context.Context, limit int) []models.Workout
	ListExercisesForWorkout(ctx context.Context, workoutID int64) []models.Exercise
}

type workoutGenerator interface {
	RequestWorkout(ctx context.Context, prompt string) (string, error)
}

const DashboardRecent = 3

var (
	ErrDraftUnnamed      = errors.New("workout name is required")
	ErrDraftNoExercises  = errors.New("add at least one exercise")
	ErrGeneratorDisabled = errors.New("workout generation is not configured")
)

// PartialSaveError reports a draft whose workout row was stored while one of
// its exercises was not. Unsaved lists the failing exercise and every one after it.
type PartialSaveError struct {
	WorkoutID int64
	Saved     int
	Unsaved   []models.DraftExercise
	Err       error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("saved workout %d with %d of %d exercises: %v",
		e.WorkoutID, e.Saved, e.Saved+len(e.Unsaved), e.Err)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}

type Service struct {
	store     workoutStore
	generator workoutGenerator
}

// NewService wires the flows to a store. generator may be nil, in which case
// PlanWorkout fails and every other flow still works.
func NewService(store workoutStore, generator workoutGenerator) *Service {
	return &Service{store: store, generator: generator}
}

// SaveDraft stores the workout and then each named exercise in order. If an
// exercise fails the workout and the exercises saved before it are kept.
func (s *Service) SaveDraft(ctx context.Context, draft *models.WorkoutDraft) (int64, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return 0, ErrDraftUnnamed
	}

	var named []models.DraftExercise
	for _, ex := range draft.Exercises {
		if strings.TrimSpace(ex.Name) != "" {
			named = append(named, ex)
		}
	}
	if len(named) == 0 {
		return 0, ErrDraftNoExercises
	}

	logger := log.WithField("draft_id", draft.DraftID)

	workoutID, err := s.store.CreateWorkout(ctx, draft.ToNewWorkout())
	if err != nil {
		logger.WithError(err).Error("failed to save workout")
		return 0, err
	}

	for i, ex := range named {
		if _, err := s.store.CreateExercise(ctx, ex.ToNewExercise(workoutID)); err != nil {
			logger.WithError(err).
				WithFields(log.Fields{"workout_id": workoutID, "exercise": ex.Name}).
				Error("failed to save exercise, workout kept partially")
			return workoutID, &PartialSaveError{
				WorkoutID: workoutID,
				Saved:     i,
				Unsaved:   named[i:],
				Err:       err,
			}
		}
	}

	logger.WithFields(log.Fields{"workout_id": workoutID, "exercises": len(named)}).Info("workout saved")
	return workoutID, nil
}

// RecentHistory pairs the n most recent workouts with their exercises.
func (s *Service) RecentHistory(ctx context.Context, n int) []models.WorkoutWithExercises {
	return s.withExercises(ctx, s.store.ListRecentWorkouts(ctx, n))
}

// FullHistory pairs every stored workout with its exercises.
func (s *Service) FullHistory(ctx context.Context) []models.WorkoutWithExercises {
	return s.withExercises(ctx, s.store.ListWorkouts(ctx))
}

func (s *Service) withExercises(ctx context.Context, workouts []models.Workout) []models.WorkoutWithExercises {
	out := make([]models.WorkoutWithExercises, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, models.WorkoutWithExercises{
			Workout:   w,
			Exercises: s.store.ListExercisesForWorkout(ctx, w.ID),
		})
	}
	return out
}

type Dashboard struct {
	Summary history.Summary
	Recent  []models.Workout
}

func (s *Service) Dashboard(ctx context.Context, now time.Time) Dashboard {
	workouts := s.store.ListWorkouts(ctx)

	recent := workouts
	if len(recent) > DashboardRecent {
		recent = recent[:DashboardRecent]
	}

	return Dashboard{
		Summary: history.Summarize(workouts, now),
		Recent:  recent,
	}
}

type Plan struct {
	Prompt  string
	Workout string
}

// BuildPrompt validates prefs and renders the prompt over the recent window
// without calling the generator.
func (s *Service) BuildPrompt(ctx context.Context, prefs models.Preferences) (string, error) {
	if err := prefs.Validate(); err != nil {
		return "", err
	}
	return prompt.Build(prefs, s.RecentHistory(ctx, prompt.WindowSize)), nil
}

// PlanWorkout asks the generator for a workout informed by recent history.
// It never writes to the store.
func (s *Service) PlanWorkout(ctx context.Context, prefs models.Preferences) (Plan, error) {
	p, err := s.BuildPrompt(ctx, prefs)
	if err != nil {
		return Plan{}, err
	}
	if s.generator == nil {
		return Plan{Prompt: p}, ErrGeneratorDisabled
	}

	text, err := s.generator.RequestWorkout(ctx, p)
	if err != nil {
		return Plan{Prompt: p}, err
	}
	return Plan{Prompt: p, Workout: text}, nil
}
