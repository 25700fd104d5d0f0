package settings

import (
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	CompanyName        *string  `json:"company_name"`
	CompanyAddress     *string  `json:"company_address"`
	CompanyEmail       *string  `json:"company_email"`
	CompanyPhone       *string  `json:"company_phone"`
	GPSLatitude        *float64 `json:"gps_latitude"`
	GPSLongitude       *float64 `json:"gps_longitude"`
	MaxDistanceMeters  *int     `json:"max_distance_meters"`
	AutoAlertViolation *bool    `json:"auto_alert_violation"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company_name cannot be empty"})
	}
	if r.CompanyEmail != nil && *r.CompanyEmail != "" && !validator.IsValidEmail(*r.CompanyEmail) {
		errs = append(errs, validator.ValidationError{Field: "company_email", Message: "invalid email"})
	}
	if r.GPSLatitude != nil && !validator.IsValidLatitude(*r.GPSLatitude) {
		errs = append(errs, validator.ValidationError{Field: "gps_latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.GPSLongitude != nil && !validator.IsValidLongitude(*r.GPSLongitude) {
		errs = append(errs, validator.ValidationError{Field: "gps_longitude", Message: "longitude must be between -180 and 180"})
	}
	if r.MaxDistanceMeters != nil && *r.MaxDistanceMeters < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_distance_meters", Message: "max_distance_meters cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertShiftRequest struct {
	ID                   string `json:"-"`
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	LateThresholdMinutes *int   `json:"late_threshold_minutes"`
	EarlyLeaveMinutes    *int   `json:"early_leave_minutes"`
	IsActive             *bool  `json:"is_active"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	start, startOK := validator.IsValidTimeOfDay(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	end, endOK := validator.IsValidTimeOfDay(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}
	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold_minutes", Message: "late_threshold_minutes cannot be negative"})
	}
	if r.EarlyLeaveMinutes != nil && *r.EarlyLeaveMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "early_leave_minutes", Message: "early_leave_minutes cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	CompanyName        string   `json:"company_name"`
	CompanyAddress     *string  `json:"company_address,omitempty"`
	CompanyEmail       *string  `json:"company_email,omitempty"`
	CompanyPhone       *string  `json:"company_phone,omitempty"`
	GPSLatitude        *float64 `json:"gps_latitude,omitempty"`
	GPSLongitude       *float64 `json:"gps_longitude,omitempty"`
	MaxDistanceMeters  *int     `json:"max_distance_meters,omitempty"`
	AutoAlertViolation bool     `json:"auto_alert_violation"`
	GeofenceEnabled    bool     `json:"geofence_enabled"`
}

func ToSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:        s.CompanyName,
		CompanyAddress:     s.CompanyAddress,
		CompanyEmail:       s.CompanyEmail,
		CompanyPhone:       s.CompanyPhone,
		GPSLatitude:        s.GPSLatitude,
		GPSLongitude:       s.GPSLongitude,
		MaxDistanceMeters:  s.MaxDistanceMeters,
		AutoAlertViolation: s.AutoAlertViolation,
		GeofenceEnabled:    s.GeofenceConfigured(),
	}
}

type ShiftResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	LateThresholdMinutes int    `json:"late_threshold_minutes"`
	EarlyLeaveMinutes    int    `json:"early_leave_minutes"`
	IsActive             bool   `json:"is_active"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		LateThresholdMinutes: s.LateThresholdMinutes,
		EarlyLeaveMinutes:    s.EarlyLeaveMinutes,
		IsActive:             s.IsActive,
	}
}
