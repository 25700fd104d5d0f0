package attendance

import (
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/utils"
)

// defaultLateThreshold applies when no active shift is configured.
const defaultLateThreshold = 15

// checkInOpen reports whether now is at or before the daily check-in
// deadline ("HH:MM" wall clock in now's location).
func checkInOpen(now time.Time, deadline string) (bool, error) {
	cutoff, err := utils.ParseWallClock(deadline, now)
	if err != nil {
		return false, err
	}
	return !now.After(cutoff), nil
}

// lateness derives late minutes and the resulting status from the check-in
// moment and the shift. Minutes accrue from the shift start; the status only
// flips to late once the shift's threshold is exceeded.
func lateness(checkIn time.Time, shift *settings.Shift) (int, attendance.Status, error) {
	if shift == nil {
		return 0, attendance.StatusPresent, nil
	}

	start, err := utils.ParseWallClock(shift.StartTime, checkIn)
	if err != nil {
		return 0, "", err
	}

	lateMinutes := utils.MinutesOfDay(checkIn) - utils.MinutesOfDay(start)
	if lateMinutes < 0 {
		lateMinutes = 0
	}

	threshold := shift.LateThresholdMinutes
	if threshold <= 0 {
		threshold = defaultLateThreshold
	}

	status := attendance.StatusPresent
	if lateMinutes > threshold {
		status = attendance.StatusLate
	}
	return lateMinutes, status, nil
}

// validateLocation enforces the geofence. With no geofence configured any
// coordinates (or none) pass. With a geofence, coordinates are mandatory and
// must fall within the allowed radius of the company center.
func validateLocation(s settings.Settings, lat, lng *float64) error {
	if !s.GeofenceConfigured() {
		return nil
	}
	if lat == nil || lng == nil {
		return attendance.ErrGPSRequired
	}

	distance := utils.HaversineDistance(*lat, *lng, *s.GPSLatitude, *s.GPSLongitude)
	if distance > float64(*s.MaxDistanceMeters) {
		return &attendance.GeofenceError{
			DistanceMeters: distance,
			MaxMeters:      *s.MaxDistanceMeters,
		}
	}
	return nil
}

// workedHours computes the payable hours between check-in and check-out,
// rounded to two decimals. Never negative.
func workedHours(checkIn, checkOut time.Time) float64 {
	if checkOut.Before(checkIn) {
		return 0
	}
	return utils.RoundHours(checkOut.Sub(checkIn))
}
