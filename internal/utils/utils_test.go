package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitlog/internal/models"
	"github.com/misterclayt0n/fitlog/internal/utils"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseWorkoutsFromTOML(t *testing.T) {
	path := writeTOML(t, `
[[workouts]]
name = "Push Day"
date = "2024-03-01"
duration = 60

  [[workouts.exercises]]
  name = "Bench Press"
  type = "strength"
  sets = 3
  reps = 10
  weight = 135.0

  [[workouts.exercises]]
  name = "Bike"
  type = "cardio"
  duration = 15

[[workouts]]
name = "Walk"
date = "2024-03-02"

  [[workouts.exercises]]
  name = "Walk"
  type = "cardio"
  distance = 2.0
`)

	workouts, err := utils.ParseWorkoutsFromTOML(path)
	require.NoError(t, err)
	require.Len(t, workouts, 2)

	push := workouts[0]
	assert.Equal(t, "Push Day", push.Name)
	require.NotNil(t, push.Duration)
	assert.Equal(t, 60, *push.Duration)
	require.Len(t, push.Exercises, 2)
	assert.Equal(t, models.ExerciseTypeCardio, push.Exercises[1].Type)

	ex := push.Exercises[0].ToNewExercise(9)
	m, ok := ex.Metrics.(models.StrengthMetrics)
	require.True(t, ok)
	assert.Equal(t, 135.0, *m.Weight)
}

func TestParseWorkoutsFromTOML_Invalid(t *testing.T) {
	path := writeTOML(t, `
[[workouts]]
name = ""
date = "March 1"

  [[workouts.exercises]]
  name = "Swim"
  type = "aquatic"
`)

	_, err := utils.ParseWorkoutsFromTOML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workout 1")
	assert.Contains(t, err.Error(), "invalid name")
	assert.Contains(t, err.Error(), `invalid date "March 1"`)
	assert.Contains(t, err.Error(), `invalid exercises[0].type "aquatic"`)
}

func TestParseWorkoutsFromTOML_MissingFile(t *testing.T) {
	_, err := utils.ParseWorkoutsFromTOML(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCalculateEpley1RM(t *testing.T) {
	assert.Equal(t, 0.0, utils.CalculateEpley1RM(100, 0))
	assert.Equal(t, 100.0, utils.CalculateEpley1RM(100, 1))
	assert.InDelta(t, 133.33, utils.CalculateEpley1RM(100, 10), 0.01)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Fri, Mar 1, 2024", utils.FormatDate("2024-03-01"))
	assert.Equal(t, "someday", utils.FormatDate("someday"))
}
