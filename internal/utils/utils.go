package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/fitlog/internal/models"
)

// WorkoutFile is the TOML layout accepted by import-workouts.
type WorkoutFile struct {
	Workouts []models.WorkoutDraft `toml:"workouts"`
}

// ParseWorkoutsFromTOML reads a workout file and validates every workout in it.
func ParseWorkoutsFromTOML(path string) ([]models.WorkoutDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file WorkoutFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for i := range file.Workouts {
		if err := file.Workouts[i].Validate(); err != nil {
			return nil, fmt.Errorf("workout %d (%q): %w", i+1, file.Workouts[i].Name, err)
		}
	}

	return file.Workouts, nil
}
