package attendance

import (
	"errors"
	"fmt"
)

var (
	// Check-in errors
	ErrCheckInClosed     = errors.New("check-in is closed for today")
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrGPSRequired       = errors.New("GPS coordinates are required to check in")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrCheckOutBeforeIn   = errors.New("check-out cannot be before check-in")
)

// GeofenceError carries the offending distance so the client can show how
// far outside the allowed radius the employee is.
type GeofenceError struct {
	DistanceMeters float64
	MaxMeters      int
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("you are %.0fm from the company location (maximum %dm)", e.DistanceMeters, e.MaxMeters)
}
