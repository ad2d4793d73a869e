package utils

import (
	"time"

	"github.com/misterclayt0n/fitlog/internal/models"
)

// Today returns the local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(models.DateLayout)
}

// FormatDate renders a stored YYYY-MM-DD date for display. Dates that do not
// parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}

// FormatLocal returns the provided time formatted in local time.
func FormatLocal(t time.Time) string {
	return t.Local().Format(time.RFC1123)
}
