package utils

import (
	"time"

	"utflykt/models"
)

// DateLayout is the wire format for calendar dates throughout the API.
const DateLayout = "2006-01-02"

// FormatDate renders a calendar date as "YYYY-MM-DD" in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" string in the local calendar.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// SeasonForDate derives the season a calendar date falls in: April through
// September is Summer, October through March is Winter.
func SeasonForDate(t time.Time) models.Season {
	m := t.Month()
	if m >= time.April && m <= time.September {
		return models.SeasonSummer
	}
	return models.SeasonWinter
}
