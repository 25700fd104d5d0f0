package report

import (
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type MonthlyAttendanceReportRequest struct {
	Month int
	Year  int
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyAttendanceRow is one employee's aggregate for the period.
type MonthlyAttendanceRow struct {
	UserID           string  `json:"user_id"`
	EmployeeName     string  `json:"employee_name"`
	Department       *string `json:"department,omitempty"`
	WorkDays         int     `json:"work_days"`
	TotalHours       float64 `json:"total_hours"`
	PresentDays      int     `json:"present_days"`
	LateDays         int     `json:"late_days"`
	LeaveDays        int     `json:"leave_days"`
	AbsentDays       int     `json:"absent_days"`
	TotalLateMinutes int     `json:"total_late_minutes"`
}

type MonthlyAttendanceReport struct {
	PeriodMonth int                    `json:"period_month"`
	PeriodYear  int                    `json:"period_year"`
	PeriodStart string                 `json:"period_start"`
	PeriodEnd   string                 `json:"period_end"`
	GeneratedAt string                 `json:"generated_at"`
	Rows        []MonthlyAttendanceRow `json:"rows"`
}
