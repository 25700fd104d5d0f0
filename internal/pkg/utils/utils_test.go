package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	// Identical points.
	assert.Zero(t, HaversineDistance(10.762622, 106.660172, 10.762622, 106.660172))

	// Ben Thanh Market to Notre-Dame Cathedral, Saigon: roughly 1.1 km.
	d := HaversineDistance(10.772461, 106.698055, 10.779783, 106.699018)
	assert.InDelta(t, 820, d, 60)

	// A point ~100 m north of the origin (1 degree latitude ~ 111.19 km).
	d = HaversineDistance(10.0, 106.0, 10.0009, 106.0)
	assert.InDelta(t, 100, d, 2)
}

func TestWorkDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	at := time.Date(2025, 3, 14, 18, 45, 12, 0, loc)
	day := WorkDate(at)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, loc), day)
	assert.Equal(t, loc, day.Location())
}

func TestMinutesOfDay(t *testing.T) {
	loc := time.UTC
	assert.Equal(t, 0, MinutesOfDay(time.Date(2025, 1, 1, 0, 0, 59, 0, loc)))
	assert.Equal(t, 570, MinutesOfDay(time.Date(2025, 1, 1, 9, 30, 0, 0, loc)))
	assert.Equal(t, 1439, MinutesOfDay(time.Date(2025, 1, 1, 23, 59, 0, 0, loc)))
}

func TestParseWallClock(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	ref := time.Date(2025, 6, 2, 14, 22, 0, 0, loc)

	got, err := ParseWallClock("09:30", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, loc), got)

	_, err = ParseWallClock("25:00", ref)
	assert.Error(t, err)
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 9.0, RoundHours(9*time.Hour))
	assert.Equal(t, 8.5, RoundHours(8*time.Hour+30*time.Minute))
	assert.Equal(t, 0.25, RoundHours(15*time.Minute))
	// 7h41m = 7.6833... hours, stored as 7.68.
	assert.Equal(t, 7.68, RoundHours(7*time.Hour+41*time.Minute))
}
