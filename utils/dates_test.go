package utils

import (
	"testing"
	"time"

	"utflykt/models"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.June, 1, 15, 4, 5, 0, time.Local)
	if got := FormatDate(d); got != "2025-06-01" {
		t.Errorf("FormatDate = %q, want 2025-06-01", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-12-24")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got := FormatDate(d); got != "2025-12-24" {
		t.Errorf("round trip gave %q", got)
	}
}

func TestSeasonForDate(t *testing.T) {
	tests := []struct {
		month time.Month
		want  models.Season
	}{
		{time.January, models.SeasonWinter},
		{time.March, models.SeasonWinter},
		{time.April, models.SeasonSummer},
		{time.July, models.SeasonSummer},
		{time.September, models.SeasonSummer},
		{time.October, models.SeasonWinter},
		{time.December, models.SeasonWinter},
	}
	for _, tt := range tests {
		d := time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.Local)
		if got := SeasonForDate(d); got != tt.want {
			t.Errorf("SeasonForDate(%s) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
