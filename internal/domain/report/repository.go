package report

import (
	"context"
	"time"
)

// ReportRepository aggregates attendance data for reporting periods.
type ReportRepository interface {
	// MonthlyAttendance returns one row per active employee covering
	// [start, end). Employees without any attendance rows still appear
	// with zeroed aggregates.
	MonthlyAttendance(ctx context.Context, start, end time.Time) ([]MonthlyAttendanceRow, error)
}
