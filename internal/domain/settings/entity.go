package settings

import "time"

// Settings is the singleton system-configuration row.
type Settings struct {
	ID                 int
	CompanyName        string
	CompanyAddress     *string
	CompanyEmail       *string
	CompanyPhone       *string
	GPSLatitude        *float64
	GPSLongitude       *float64
	MaxDistanceMeters  *int
	AutoAlertViolation bool
	UpdatedAt          time.Time
}

// GeofenceConfigured reports whether check-in/out location validation is
// active. All three of center latitude, center longitude and a positive max
// distance must be set; otherwise GPS validation is skipped entirely.
func (s Settings) GeofenceConfigured() bool {
	return s.GPSLatitude != nil && s.GPSLongitude != nil &&
		s.MaxDistanceMeters != nil && *s.MaxDistanceMeters > 0
}

// Shift is a named work-time window. StartTime/EndTime are wall-clock
// "HH:MM" strings in the company timezone.
type Shift struct {
	ID                   string
	Name                 string
	StartTime            string
	EndTime              string
	LateThresholdMinutes int
	EarlyLeaveMinutes    int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
