package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("system settings row not found")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrNoActiveShift    = errors.New("no active shift configured")
)
