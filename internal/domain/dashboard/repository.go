package dashboard

import (
	"context"
	"time"
)

// DayCounts holds per-status attendance counts for one work date.
type DayCounts struct {
	Date    time.Time
	Present int
	Late    int
	OnLeave int
}

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int, error)

	// CountsByDate returns attendance status counts for a single work date.
	CountsByDate(ctx context.Context, workDate time.Time) (DayCounts, error)

	// CountsByRange returns one DayCounts per work date in [start, end),
	// including dates with no rows.
	CountsByRange(ctx context.Context, start, end time.Time) ([]DayCounts, error)

	// EmployeeMonthAggregates returns work days, total hours, late days,
	// leave days and total late minutes for one user in [start, end).
	EmployeeMonthAggregates(ctx context.Context, userID string, start, end time.Time) (workDays int, totalHours float64, lateDays int, leaveDays int, lateMinutes int, err error)
}
