package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// MonthlyAttendance implements report.ReportRepository. One row per active
// employee; employees with no attendance in the period come back zeroed.
func (r *reportRepository) MonthlyAttendance(ctx context.Context, start, end time.Time) ([]report.MonthlyAttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id,
			   u.full_name,
			   d.name AS department,
			   COUNT(a.id) FILTER (WHERE a.check_in IS NOT NULL) AS work_days,
			   COALESCE(SUM(a.total_hours), 0) AS total_hours,
			   COUNT(a.id) FILTER (WHERE a.status = 'present') AS present_days,
			   COUNT(a.id) FILTER (WHERE a.status = 'late') AS late_days,
			   COUNT(a.id) FILTER (WHERE a.status = 'on_leave') AS leave_days,
			   COUNT(a.id) FILTER (WHERE a.status = 'absent') AS absent_days,
			   COALESCE(SUM(a.late_minutes), 0) AS total_late_minutes
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		LEFT JOIN attendances a
			   ON a.user_id = u.id
			  AND a.work_date >= $1
			  AND a.work_date < $2
		WHERE u.deleted_at IS NULL AND u.is_active = TRUE
		GROUP BY u.id, u.full_name, d.name
		ORDER BY u.full_name ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.MonthlyAttendanceRow
	for rows.Next() {
		var row report.MonthlyAttendanceRow
		err := rows.Scan(
			&row.UserID,
			&row.EmployeeName,
			&row.Department,
			&row.WorkDays,
			&row.TotalHours,
			&row.PresentDays,
			&row.LateDays,
			&row.LeaveDays,
			&row.AbsentDays,
			&row.TotalLateMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}
