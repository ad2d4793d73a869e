package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/fitlog/internal/models"
)

func TestParseWorkoutInput(t *testing.T) {
	w, err := models.ParseWorkoutInput(models.WorkoutInput{
		Name:     "  Push Day ",
		Date:     "2024-03-01",
		Duration: "60",
		Notes:    "felt strong",
	})
	require.NoError(t, err)
	assert.Equal(t, "Push Day", w.Name)
	assert.Equal(t, "2024-03-01", w.Date)
	require.NotNil(t, w.Duration)
	assert.Equal(t, 60, *w.Duration)
	assert.Equal(t, "felt strong", w.Notes)
}

func TestParseWorkoutInput_OptionalDuration(t *testing.T) {
	w, err := models.ParseWorkoutInput(models.WorkoutInput{Name: "Walk", Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Nil(t, w.Duration)
}

func TestParseWorkoutInput_ReportsEveryField(t *testing.T) {
	_, err := models.ParseWorkoutInput(models.WorkoutInput{
		Name:     "   ",
		Date:     "03/01/2024",
		Duration: "an hour",
	})
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)

	var fields []string
	for _, e := range errs {
		var verr *models.ValidationError
		require.True(t, errors.As(e, &verr))
		fields = append(fields, verr.Field)
	}
	assert.Equal(t, []string{"name", "date", "duration"}, fields)
}

func TestParseExerciseInput_Strength(t *testing.T) {
	ex, err := models.ParseExerciseInput(models.ExerciseInput{
		Name:   "Bench Press",
		Sets:   "3",
		Reps:   "10",
		Weight: "132.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", ex.Name)
	assert.Equal(t, models.ExerciseTypeStrength, ex.Type())

	m, ok := ex.Metrics.(models.StrengthMetrics)
	require.True(t, ok)
	require.NotNil(t, m.Sets)
	require.NotNil(t, m.Reps)
	require.NotNil(t, m.Weight)
	assert.Equal(t, 3, *m.Sets)
	assert.Equal(t, 10, *m.Reps)
	assert.Equal(t, 132.5, *m.Weight)
}

func TestParseExerciseInput_BlankMetricsAreAbsent(t *testing.T) {
	ex, err := models.ParseExerciseInput(models.ExerciseInput{Name: "Plank"})
	require.NoError(t, err)

	f := ex.Fields()
	assert.Nil(t, f.Sets)
	assert.Nil(t, f.Reps)
	assert.Nil(t, f.Weight)
	assert.Nil(t, f.Distance)
	assert.Nil(t, f.Duration)
}

func TestParseExerciseInput_Cardio(t *testing.T) {
	ex, err := models.ParseExerciseInput(models.ExerciseInput{
		Name:     "Run",
		Type:     "Cardio",
		Distance: "3.1",
		Duration: "25",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExerciseTypeCardio, ex.Type())

	m, ok := ex.Metrics.(models.CardioMetrics)
	require.True(t, ok)
	assert.Equal(t, 3.1, *m.Distance)
	assert.Equal(t, 25, *m.Duration)
}

func TestParseExerciseInput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  models.ExerciseInput
		fields []string
	}{
		{
			name:   "unknown type",
			input:  models.ExerciseInput{Name: "Yoga", Type: "flexibility"},
			fields: []string{"type"},
		},
		{
			name:   "missing name and bad numbers",
			input:  models.ExerciseInput{Sets: "three", Reps: "0", Weight: "-5"},
			fields: []string{"name", "sets", "reps", "weight"},
		},
		{
			name:   "cardio fields on strength",
			input:  models.ExerciseInput{Name: "Squat", Distance: "1", Duration: "5"},
			fields: []string{"distance", "duration"},
		},
		{
			name:   "strength fields on cardio",
			input:  models.ExerciseInput{Name: "Row", Type: "cardio", Sets: "3"},
			fields: []string{"sets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.ParseExerciseInput(tt.input)
			require.Error(t, err)

			var fields []string
			for _, e := range multierr.Errors(err) {
				var verr *models.ValidationError
				require.True(t, errors.As(e, &verr))
				fields = append(fields, verr.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestDraftExercise_RoundTrip(t *testing.T) {
	sets, reps := 5, 5
	ne := models.NewExercise{Name: "Deadlift", Metrics: models.StrengthMetrics{Sets: &sets, Reps: &reps}}

	de := models.NewDraftExercise(ne)
	assert.Equal(t, models.ExerciseTypeStrength, de.Type)

	back := de.ToNewExercise(42)
	assert.Equal(t, int64(42), back.WorkoutID)
	assert.Equal(t, ne.Name, back.Name)
	assert.Equal(t, ne.Metrics, back.Metrics)
}

func TestMetricsFor_DropsForeignFields(t *testing.T) {
	sets := 3
	dist := 2.0
	m := models.MetricsFor(models.ExerciseTypeCardio, models.MetricFields{Sets: &sets, Distance: &dist})

	cardio, ok := m.(models.CardioMetrics)
	require.True(t, ok)
	assert.Equal(t, &dist, cardio.Distance)
	assert.Nil(t, models.Exercise{Metrics: m}.Fields().Sets)
}
