package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/fitlog/internal/models"
)

const sqliteTimestamp = "2006-01-02 15:04:05"

// Dump is the TOML representation of both tables.
type Dump struct {
	Workouts  []WorkoutRow  `toml:"workouts"`
	Exercises []ExerciseRow `toml:"exercises"`
}

type WorkoutRow struct {
	ID        int64     `toml:"id"`
	Date      string    `toml:"date"`
	Name      string    `toml:"name"`
	Duration  *int      `toml:"duration,omitempty"`
	Notes     string    `toml:"notes,omitempty"`
	CreatedAt time.Time `toml:"created_at"`
}

type ExerciseRow struct {
	ID        int64    `toml:"id"`
	WorkoutID int64    `toml:"workout_id"`
	Name      string   `toml:"name"`
	Type      string   `toml:"type"`
	Sets      *int     `toml:"sets,omitempty"`
	Reps      *int     `toml:"reps,omitempty"`
	Weight    *float64 `toml:"weight,omitempty"`
	Distance  *float64 `toml:"distance,omitempty"`
	Duration  *int     `toml:"duration,omitempty"`
}

// Export writes every workout and exercise to a TOML file at outputPath. A
// failed read is returned and no file is written.
func (s *Storage) Export(ctx context.Context, outputPath string) error {
	var dump Dump

	workouts, err := s.exportWorkouts(ctx)
	if err != nil {
		return err
	}
	for _, w := range workouts {
		dump.Workouts = append(dump.Workouts, WorkoutRow{
			ID:        w.ID,
			Date:      w.Date,
			Name:      w.Name,
			Duration:  w.Duration,
			Notes:     w.Notes,
			CreatedAt: w.CreatedAt,
		})
	}

	exercises, err := s.exportExercises(ctx)
	if err != nil {
		return err
	}
	for _, ex := range exercises {
		f := ex.Fields()
		dump.Exercises = append(dump.Exercises, ExerciseRow{
			ID:        ex.ID,
			WorkoutID: ex.WorkoutID,
			Name:      ex.Name,
			Type:      ex.Type().String(),
			Sets:      f.Sets,
			Reps:      f.Reps,
			Weight:    f.Weight,
			Distance:  f.Distance,
			Duration:  f.Duration,
		})
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}

func (s *Storage) exportWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+workoutColumns+` FROM workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return workouts, nil
}

func (s *Storage) exportExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex exerciseRow
		if err := rows.Scan(ex.dest()...); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		exercises = append(exercises, ex.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}

// Import replaces the contents of both tables with the dump at filePath. The
// whole import runs in one transaction. A dump without workouts is refused
// with ErrEmptyDump unless allowEmpty is set.
func (s *Storage) Import(ctx context.Context, filePath string, allowEmpty bool) error {
	var dump Dump
	if _, err := toml.DecodeFile(filePath, &dump); err != nil {
		return fmt.Errorf("decoding %s: %w", filePath, err)
	}
	if len(dump.Workouts) == 0 && !allowEmpty {
		return ErrEmptyDump
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"exercises", "workouts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}
	}

	for _, w := range dump.Workouts {
		createdAt := w.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO workouts (id, date, name, duration, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, w.Date, w.Name, nullableInt(w.Duration), nullableString(w.Notes),
			createdAt.UTC().Format(sqliteTimestamp),
		)
		if err != nil {
			return fmt.Errorf("inserting workout %d: %w", w.ID, err)
		}
	}

	for _, e := range dump.Exercises {
		typ := models.ExerciseType(e.Type)
		if !typ.IsValid() {
			return fmt.Errorf("exercise %d: unknown type %q", e.ID, e.Type)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exercises
				(id, workout_id, name, type, sets, reps, weight, distance, duration)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.WorkoutID, e.Name, typ.String(),
			nullableInt(e.Sets), nullableInt(e.Reps), nullableFloat(e.Weight),
			nullableFloat(e.Distance), nullableInt(e.Duration),
		)
		if err != nil {
			return fmt.Errorf("inserting exercise %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
