package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

const (
	DriverLibSQL = "libsql"
	DriverSQLite = "sqlite"
)

// Storage owns the workouts and exercises tables. It is safe for concurrent
// use to the extent *sql.DB is.
type Storage struct {
	db     *sql.DB
	driver string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		duration INTEGER,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER REFERENCES workouts(id),
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'strength',
		sets INTEGER,
		reps INTEGER,
		weight REAL,
		distance REAL,
		duration INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,
	`CREATE INDEX IF NOT EXISTS idx_exercises_workout_id ON exercises(workout_id)`,
}

// DriverFor picks the database/sql driver for a connection URL. Remote Turso
// and sqld URLs go through libsql, everything else is a local SQLite file.
func DriverFor(url string) string {
	for _, prefix := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, prefix) {
			return DriverLibSQL
		}
	}
	return DriverSQLite
}

// Open connects to the database at url and ensures the schema exists.
func Open(ctx context.Context, url string) (*Storage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &InitError{Err: fmt.Errorf("database url is empty")}
	}

	driver := DriverFor(url)
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("failed to open db: %w", err)}
	}
	if driver == DriverSQLite {
		// A single connection keeps one writer at a time and makes :memory: usable.
		db.SetMaxOpenConns(1)
	}

	s := &Storage{db: db, driver: driver}
	if err := s.Initialize(ctx); err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	log.WithField("driver", driver).Debug("storage opened")
	return s, nil
}

// Initialize creates the tables and indexes if they are missing. It is safe to
// call more than once.
func (s *Storage) Initialize(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &InitError{Err: fmt.Errorf("failed to initialize schema: %w", err)}
		}
	}
	return nil
}

func (s *Storage) Driver() string {
	return s.driver
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
