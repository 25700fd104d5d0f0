package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const attendanceColumns = `
	a.id, a.user_id, a.work_date, a.check_in, a.check_out, a.total_hours,
	a.late_minutes, a.status, a.latitude, a.longitude, a.location_accuracy,
	a.location_address, a.is_auto_checkout, a.note, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row, withEmployee bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.UserID, &att.WorkDate, &att.CheckIn, &att.CheckOut, &att.TotalHours,
		&att.LateMinutes, &att.Status, &att.Latitude, &att.Longitude, &att.LocationAccuracy,
		&att.LocationAddress, &att.IsAutoCheckout, &att.Note, &att.CreatedAt, &att.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &att.EmployeeName, &att.DepartmentName)
	}
	if err := row.Scan(dest...); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, work_date, check_in, check_out, total_hours, late_minutes,
			status, latitude, longitude, location_accuracy, location_address,
			is_auto_checkout, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID,
		att.WorkDate,
		att.CheckIn,
		att.CheckOut,
		att.TotalHours,
		att.LateMinutes,
		att.Status,
		att.Latitude,
		att.Longitude,
		att.LocationAccuracy,
		att.LocationAddress,
		att.IsAutoCheckout,
		att.Note,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		// FOR UPDATE on a nonexistent row locks nothing, so two concurrent
		// first check-ins can both reach this INSERT. The (user_id, work_date)
		// unique index decides the winner; the loser gets the duplicate error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			   u.full_name AS employee_name,
			   d.name AS department_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.work_date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, workDate), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// GetByUserAndDateForUpdate implements attendance.AttendanceRepository.
// The row lock only holds when the context carries a transaction; callers
// must run this inside WithTransaction.
func (a *attendanceRepository) GetByUserAndDateForUpdate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.work_date = $2
		FOR UPDATE
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, workDate), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock attendance row: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository. It writes the full
// mutable row; callers load-modify-save.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, total_hours = $3, late_minutes = $4,
			status = $5, latitude = $6, longitude = $7, location_accuracy = $8,
			location_address = $9, is_auto_checkout = $10, note = $11, updated_at = NOW()
		WHERE id = $12
	`

	tag, err := q.Exec(ctx, query,
		att.CheckIn,
		att.CheckOut,
		att.TotalHours,
		att.LateMinutes,
		att.Status,
		att.Latitude,
		att.Longitude,
		att.LocationAccuracy,
		att.LocationAddress,
		att.IsAutoCheckout,
		att.Note,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.work_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.work_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		WHERE %s
		ORDER BY a.work_date DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// List implements attendance.AttendanceRepository. Admin listing across
// all employees with name search.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AdminFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND u.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND u.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.work_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.work_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.work_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`,
			   u.full_name AS employee_name,
			   d.name AS department_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE %s
		ORDER BY a.work_date DESC, u.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// ListOpenForAutoCheckout implements attendance.AttendanceRepository.
// Open rows are checked in but never checked out; on-leave rows carry no
// check_in and are naturally excluded.
func (a *attendanceRepository) ListOpenForAutoCheckout(ctx context.Context, workDate time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.work_date = $1
		  AND a.check_in IS NOT NULL
		  AND a.check_out IS NULL
		  AND a.is_auto_checkout = false
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query open attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, nil
}
