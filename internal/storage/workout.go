package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/fitlog/internal/models"
)

const workoutColumns = `id, date, name, duration, notes, strftime('%Y-%m-%dT%H:%M:%SZ', created_at)`

// CreateWorkout inserts a workout and returns its new identifier.
func (s *Storage) CreateWorkout(ctx context.Context, w models.NewWorkout) (int64, error) {
	const op = "create workout"

	if strings.TrimSpace(w.Name) == "" || strings.TrimSpace(w.Date) == "" {
		return 0, &WriteError{Op: op, Err: ErrInvalidWorkout}
	}
	if w.Duration != nil && *w.Duration < 0 {
		return 0, &WriteError{Op: op, Err: fmt.Errorf("negative duration %d", *w.Duration)}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO workouts (date, name, duration, notes) VALUES (?, ?, ?, ?)`,
		w.Date,
		strings.TrimSpace(w.Name),
		nullableInt(w.Duration),
		nullableString(w.Notes),
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

// ListWorkouts returns every workout, newest date first. Read failures are
// logged and yield an empty list.
func (s *Storage) ListWorkouts(ctx context.Context) []models.Workout {
	return s.queryWorkouts(ctx, "list workouts",
		`SELECT `+workoutColumns+` FROM workouts ORDER BY date DESC, id ASC`)
}

// ListRecentWorkouts returns at most limit workouts in the ListWorkouts order.
func (s *Storage) ListRecentWorkouts(ctx context.Context, limit int) []models.Workout {
	if limit <= 0 {
		log.WithField("op", "list recent workouts").
			WithField("limit", limit).
			Error("limit must be positive")
		return []models.Workout{}
	}
	return s.queryWorkouts(ctx, "list recent workouts",
		`SELECT `+workoutColumns+` FROM workouts ORDER BY date DESC, id ASC LIMIT ?`, limit)
}

// ListWorkoutsByDate returns the workouts logged on one day.
func (s *Storage) ListWorkoutsByDate(ctx context.Context, date string) []models.Workout {
	return s.queryWorkouts(ctx, "list workouts by date",
		`SELECT `+workoutColumns+` FROM workouts WHERE date = ? ORDER BY id ASC`, date)
}

// ListWorkoutsBetween returns workouts with from <= date <= to.
func (s *Storage) ListWorkoutsBetween(ctx context.Context, from, to string) []models.Workout {
	return s.queryWorkouts(ctx, "list workouts between",
		`SELECT `+workoutColumns+` FROM workouts WHERE date >= ? AND date <= ? ORDER BY date DESC, id ASC`,
		from, to)
}

func (s *Storage) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout %d: %w", id, ErrWorkoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout %d: %w", id, err)
	}
	return &w, nil
}

func (s *Storage) queryWorkouts(ctx context.Context, op, query string, args ...any) []models.Workout {
	logger := log.WithField("op", op)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.WithError(err).Error("failed to query workouts")
		return []models.Workout{}
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			logger.WithError(err).Error("failed to scan workout")
			return []models.Workout{}
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		logger.WithError(err).Error("failed to iterate workouts")
		return []models.Workout{}
	}

	return workouts
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(r rowScanner) (models.Workout, error) {
	var (
		w         models.Workout
		duration  sql.NullInt64
		notes     sql.NullString
		createdAt sql.NullString
	)
	if err := r.Scan(&w.ID, &w.Date, &w.Name, &duration, &notes, &createdAt); err != nil {
		return models.Workout{}, err
	}

	w.Duration = intPtr(duration)
	w.Notes = notes.String
	if createdAt.Valid {
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
	}
	return w, nil
}
