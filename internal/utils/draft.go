package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/fitlog/internal/config"
	"github.com/misterclayt0n/fitlog/internal/models"
)

var ErrNoDraft = errors.New("no workout in progress, run 'fitlog start-workout' first")

func getDraftPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_workout.toml"), nil
}

func SaveDraft(draft *models.WorkoutDraft) error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(draft)
}

func LoadDraft() (*models.WorkoutDraft, error) {
	path, err := getDraftPath()
	if err != nil {
		return nil, err
	}

	var draft models.WorkoutDraft
	if _, err := toml.DecodeFile(path, &draft); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDraft
		}
		return nil, err
	}

	return &draft, nil
}

func ClearDraft() error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func DraftExists() bool {
	path, err := getDraftPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
