package attendance

import (
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Address   *string  `json:"address"`
	Note      *string  `json:"note"`
}

func (r *CheckInRequest) Validate() error {
	return validateLocation(r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Address   *string  `json:"address"`
	Note      *string  `json:"note"`
}

func (r *CheckOutRequest) Validate() error {
	return validateLocation(r.Latitude, r.Longitude)
}

func validateLocation(lat, lng *float64) error {
	var errs validator.ValidationErrors

	// Coordinates are optional as a pair; when one is present, both must be.
	if (lat == nil) != (lng == nil) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "latitude and longitude must be provided together"})
	}
	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if lng != nil && !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

type AdminFilter struct {
	UserID       *string
	EmployeeName *string
	DepartmentID *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Status       *string
	Page         int
	Limit        int
}

type AdminUpdateRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
	Note     *string `json:"note"`
}

func (r *AdminUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		if _, err := time.Parse("2006-01-02 15:04:05", *r.CheckIn); err != nil {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be YYYY-MM-DD HH:MM:SS"})
		}
	}
	if r.CheckOut != nil {
		if _, err := time.Parse("2006-01-02 15:04:05", *r.CheckOut); err != nil {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be YYYY-MM-DD HH:MM:SS"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, late, absent or on_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	WorkDate       string   `json:"work_date"`
	CheckIn        *string  `json:"check_in"`
	CheckOut       *string  `json:"check_out"`
	TotalHours     *float64 `json:"total_hours"`
	LateMinutes    int      `json:"late_minutes"`
	Status         string   `json:"status"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	LocationAddr   *string  `json:"location_address,omitempty"`
	IsAutoCheckout bool     `json:"is_auto_checkout"`
	Note           *string  `json:"note,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
