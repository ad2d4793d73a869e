package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/fitlog/internal/models"
)

const exerciseColumns = `id, workout_id, name, type, sets, reps, weight, distance, duration`

// CreateExercise inserts an exercise for the given workout. The workout id is
// not checked against the workouts table.
func (s *Storage) CreateExercise(ctx context.Context, ex models.NewExercise) (int64, error) {
	const op = "create exercise"

	if strings.TrimSpace(ex.Name) == "" {
		return 0, &WriteError{Op: op, Err: ErrInvalidExercise}
	}

	f := ex.Fields()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO exercises
			(workout_id, name, type, sets, reps, weight, distance, duration)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ex.WorkoutID,
		strings.TrimSpace(ex.Name),
		ex.Type().String(),
		nullableInt(f.Sets),
		nullableInt(f.Reps),
		nullableFloat(f.Weight),
		nullableFloat(f.Distance),
		nullableInt(f.Duration),
	)
	if err != nil {
		return 0, &WriteError{Op: op, Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &WriteError{Op: op, Err: fmt.Errorf("failed to read new id: %w", err)}
	}
	return id, nil
}

// ListExercisesForWorkout returns the exercises of a workout in insertion order.
func (s *Storage) ListExercisesForWorkout(ctx context.Context, workoutID int64) []models.Exercise {
	return s.queryExercises(ctx, "list exercises for workout",
		`SELECT `+exerciseColumns+` FROM exercises WHERE workout_id = ? ORDER BY id`, workoutID)
}

// ExerciseRecord is one past performance of an exercise with the date of its workout.
type ExerciseRecord struct {
	Date     string
	Workout  string
	Exercise models.Exercise
}

// ListExerciseHistory returns the most recent performances of the named exercise,
// matched case-insensitively.
func (s *Storage) ListExerciseHistory(ctx context.Context, name string, limit int) []ExerciseRecord {
	logger := log.WithField("op", "list exercise history")
	if limit <= 0 {
		logger.WithField("limit", limit).Error("limit must be positive")
		return []ExerciseRecord{}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT w.date, w.name, e.id, e.workout_id, e.name, e.type, e.sets, e.reps, e.weight, e.distance, e.duration
		FROM exercises e
		JOIN workouts w ON w.id = e.workout_id
		WHERE lower(e.name) = lower(?)
		ORDER BY w.date DESC, e.id DESC
		LIMIT ?`,
		strings.TrimSpace(name), limit,
	)
	if err != nil {
		logger.WithError(err).Error("failed to query exercise history")
		return []ExerciseRecord{}
	}
	defer rows.Close()

	records := []ExerciseRecord{}
	for rows.Next() {
		var rec ExerciseRecord
		var ex exerciseRow
		if err := rows.Scan(append([]any{&rec.Date, &rec.Workout}, ex.dest()...)...); err != nil {
			logger.WithError(err).Error("failed to scan exercise history")
			return []ExerciseRecord{}
		}
		rec.Exercise = ex.toModel()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		logger.WithError(err).Error("failed to iterate exercise history")
		return []ExerciseRecord{}
	}

	return records
}

func (s *Storage) queryExercises(ctx context.Context, op, query string, args ...any) []models.Exercise {
	logger := log.WithField("op", op)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.WithError(err).Error("failed to query exercises")
		return []models.Exercise{}
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var ex exerciseRow
		if err := rows.Scan(ex.dest()...); err != nil {
			logger.WithError(err).Error("failed to scan exercise")
			return []models.Exercise{}
		}
		exercises = append(exercises, ex.toModel())
	}
	if err := rows.Err(); err != nil {
		logger.WithError(err).Error("failed to iterate exercises")
		return []models.Exercise{}
	}

	return exercises
}

type exerciseRow struct {
	id        int64
	workoutID sql.NullInt64
	name      string
	typ       string
	sets      sql.NullInt64
	reps      sql.NullInt64
	weight    sql.NullFloat64
	distance  sql.NullFloat64
	duration  sql.NullInt64
}

func (r *exerciseRow) dest() []any {
	return []any{&r.id, &r.workoutID, &r.name, &r.typ, &r.sets, &r.reps, &r.weight, &r.distance, &r.duration}
}

func (r *exerciseRow) toModel() models.Exercise {
	return models.Exercise{
		ID:        r.id,
		WorkoutID: r.workoutID.Int64,
		Name:      r.name,
		Metrics: models.MetricsFor(models.ExerciseType(r.typ), models.MetricFields{
			Sets:     intPtr(r.sets),
			Reps:     intPtr(r.reps),
			Weight:   floatPtr(r.weight),
			Distance: floatPtr(r.distance),
			Duration: intPtr(r.duration),
		}),
	}
}
