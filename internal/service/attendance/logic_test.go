package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
)

func intPtr(i int) *int             { return &i }
func float64Ptr(f float64) *float64 { return &f }

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	return loc
}

func TestCheckInOpen(t *testing.T) {
	loc := mustLocation(t)
	day := func(h, m int) time.Time {
		return time.Date(2025, 4, 7, h, m, 0, 0, loc)
	}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before deadline", day(7, 45), true},
		{"exactly at deadline", day(9, 30), true},
		{"one minute past", day(9, 31), false},
		{"afternoon", day(14, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			open, err := checkInOpen(c.now, "09:30")
			require.NoError(t, err)
			assert.Equal(t, c.want, open)
		})
	}

	_, err := checkInOpen(day(8, 0), "not-a-time")
	assert.Error(t, err)
}

func TestLateness(t *testing.T) {
	loc := mustLocation(t)
	shift := &settings.Shift{
		Name:                 "Ca hành chính",
		StartTime:            "08:00",
		EndTime:              "17:00",
		LateThresholdMinutes: 15,
	}
	checkInAt := func(h, m int) time.Time {
		return time.Date(2025, 4, 7, h, m, 0, 0, loc)
	}

	cases := []struct {
		name        string
		checkIn     time.Time
		wantMinutes int
		wantStatus  attendance.Status
	}{
		{"early arrival", checkInAt(7, 40), 0, attendance.StatusPresent},
		{"on the dot", checkInAt(8, 0), 0, attendance.StatusPresent},
		{"late within threshold", checkInAt(8, 10), 10, attendance.StatusPresent},
		{"exactly at threshold", checkInAt(8, 15), 15, attendance.StatusPresent},
		{"past threshold", checkInAt(8, 20), 20, attendance.StatusLate},
		{"very late", checkInAt(9, 25), 85, attendance.StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			minutes, status, err := lateness(c.checkIn, shift)
			require.NoError(t, err)
			assert.Equal(t, c.wantMinutes, minutes)
			assert.Equal(t, c.wantStatus, status)
		})
	}
}

func TestLatenessWithoutShift(t *testing.T) {
	loc := mustLocation(t)
	minutes, status, err := lateness(time.Date(2025, 4, 7, 11, 0, 0, 0, loc), nil)
	require.NoError(t, err)
	assert.Zero(t, minutes)
	assert.Equal(t, attendance.StatusPresent, status)
}

func TestLatenessDefaultThreshold(t *testing.T) {
	loc := mustLocation(t)
	shift := &settings.Shift{StartTime: "08:00", EndTime: "17:00"}

	// 16 minutes late exceeds the fallback 15-minute threshold.
	minutes, status, err := lateness(time.Date(2025, 4, 7, 8, 16, 0, 0, loc), shift)
	require.NoError(t, err)
	assert.Equal(t, 16, minutes)
	assert.Equal(t, attendance.StatusLate, status)
}

func TestValidateLocation(t *testing.T) {
	office := settings.Settings{
		GPSLatitude:       float64Ptr(10.762622),
		GPSLongitude:      float64Ptr(106.660172),
		MaxDistanceMeters: intPtr(100),
	}

	t.Run("geofence not configured accepts anything", func(t *testing.T) {
		assert.NoError(t, validateLocation(settings.Settings{}, nil, nil))
		assert.NoError(t, validateLocation(settings.Settings{}, float64Ptr(0), float64Ptr(0)))
	})

	t.Run("coordinates required when configured", func(t *testing.T) {
		err := validateLocation(office, nil, nil)
		assert.ErrorIs(t, err, attendance.ErrGPSRequired)
	})

	t.Run("inside radius", func(t *testing.T) {
		err := validateLocation(office, float64Ptr(10.762700), float64Ptr(106.660200))
		assert.NoError(t, err)
	})

	t.Run("outside radius", func(t *testing.T) {
		err := validateLocation(office, float64Ptr(10.772461), float64Ptr(106.698055))
		var geoErr *attendance.GeofenceError
		require.ErrorAs(t, err, &geoErr)
		assert.Greater(t, geoErr.DistanceMeters, 100.0)
		assert.Equal(t, 100, geoErr.MaxMeters)
	})
}

func TestWorkedHours(t *testing.T) {
	loc := mustLocation(t)
	at := func(h, m int) time.Time {
		return time.Date(2025, 4, 7, h, m, 0, 0, loc)
	}

	assert.Equal(t, 9.0, workedHours(at(8, 0), at(17, 0)))
	assert.Equal(t, 8.5, workedHours(at(8, 30), at(17, 0)))
	assert.Equal(t, 0.0, workedHours(at(17, 0), at(8, 0)))
}
