package models

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

var (
	Intensities = []string{"light", "moderate", "intense"}
	Focuses     = []string{"full-body", "upper-body", "lower-body", "cardio", "strength"}
	Equipments  = []string{"gym", "home", "bodyweight"}
	Experiences = []string{"beginner", "intermediate", "advanced"}
)

// Preferences describe the workout a user wants generated. They are never stored.
type Preferences struct {
	Duration   string `json:"duration"` // minutes, as typed
	Intensity  string `json:"intensity"`
	Focus      string `json:"focus"`
	Equipment  string `json:"equipment"`
	Experience string `json:"experience"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Duration:   "45",
		Intensity:  "moderate",
		Focus:      "full-body",
		Equipment:  "gym",
		Experience: "intermediate",
	}
}

// Validate returns every field that is out of range, combined into one error.
func (p Preferences) Validate() error {
	var errs error

	d, err := strconv.Atoi(strings.TrimSpace(p.Duration))
	if err != nil || d <= 0 {
		errs = multierr.Append(errs, invalid("duration", p.Duration, "must be a positive number of minutes"))
	}
	errs = multierr.Append(errs, oneOf("intensity", p.Intensity, Intensities))
	errs = multierr.Append(errs, oneOf("focus", p.Focus, Focuses))
	errs = multierr.Append(errs, oneOf("equipment", p.Equipment, Equipments))
	errs = multierr.Append(errs, oneOf("experience", p.Experience, Experiences))

	return errs
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return invalid(field, value, "must be one of "+strings.Join(allowed, ", "))
}
