package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Storage) WorkoutExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM workouts WHERE id = ?)",
		id,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check workout existence: %w", err)
	}

	return exists, nil
}
