package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/dashboard"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL AND is_active = TRUE`
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

// CountsByDate implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountsByDate(ctx context.Context, workDate time.Time) (dashboard.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE status IN ('present', 'late')) AS present,
			   COUNT(*) FILTER (WHERE status = 'late') AS late,
			   COUNT(*) FILTER (WHERE status = 'on_leave') AS on_leave
		FROM attendances
		WHERE work_date = $1
	`

	counts := dashboard.DayCounts{Date: workDate}
	if err := q.QueryRow(ctx, query, workDate).Scan(&counts.Present, &counts.Late, &counts.OnLeave); err != nil {
		return dashboard.DayCounts{}, fmt.Errorf("failed to count attendance by date: %w", err)
	}

	return counts, nil
}

// CountsByRange implements dashboard.DashboardRepository. generate_series
// fills the dates nothing was recorded on.
func (r *dashboardRepository) CountsByRange(ctx context.Context, start, end time.Time) ([]dashboard.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT gs.day::date,
			   COUNT(a.id) FILTER (WHERE a.status IN ('present', 'late')) AS present,
			   COUNT(a.id) FILTER (WHERE a.status = 'late') AS late,
			   COUNT(a.id) FILTER (WHERE a.status = 'on_leave') AS on_leave
		FROM generate_series($1::date, $2::date - INTERVAL '1 day', INTERVAL '1 day') AS gs(day)
		LEFT JOIN attendances a ON a.work_date = gs.day::date
		GROUP BY gs.day
		ORDER BY gs.day ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance trend: %w", err)
	}
	defer rows.Close()

	var result []dashboard.DayCounts
	for rows.Next() {
		var counts dashboard.DayCounts
		if err := rows.Scan(&counts.Date, &counts.Present, &counts.Late, &counts.OnLeave); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		result = append(result, counts)
	}

	return result, nil
}

// EmployeeMonthAggregates implements dashboard.DashboardRepository.
func (r *dashboardRepository) EmployeeMonthAggregates(ctx context.Context, userID string, start, end time.Time) (int, float64, int, int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE check_in IS NOT NULL) AS work_days,
			   COALESCE(SUM(total_hours), 0) AS total_hours,
			   COUNT(*) FILTER (WHERE status = 'late') AS late_days,
			   COUNT(*) FILTER (WHERE status = 'on_leave') AS leave_days,
			   COALESCE(SUM(late_minutes), 0) AS total_late_minutes
		FROM attendances
		WHERE user_id = $1
		  AND work_date >= $2
		  AND work_date < $3
	`

	var workDays, lateDays, leaveDays, lateMinutes int
	var totalHours float64
	err := q.QueryRow(ctx, query, userID, start, end).Scan(&workDays, &totalHours, &lateDays, &leaveDays, &lateMinutes)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("failed to query employee month aggregates: %w", err)
	}

	return workDays, totalHours, lateDays, leaveDays, lateMinutes, nil
}
