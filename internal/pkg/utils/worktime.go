package utils

import (
	"math"
	"time"
)

// WorkDate truncates t to its calendar day in t's own location. The result is
// the canonical work-date key for attendance rows.
func WorkDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MinutesOfDay returns the wall-clock minute offset of t within its day.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseWallClock combines an "HH:MM" wall-clock string with the calendar day
// of ref, in ref's location.
func ParseWallClock(value string, ref time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), nil
}

// RoundHours converts d to fractional hours rounded to two decimals, the
// precision attendance total_hours is stored at.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
