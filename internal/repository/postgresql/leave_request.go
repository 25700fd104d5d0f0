package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.approved_by, lr.approved_at, lr.rejected_reason,
	lr.created_at, lr.updated_at`

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func scanLeaveRequest(row pgx.Row, withJoins bool) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	dest := []interface{}{
		&lr.ID, &lr.UserID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectedReason,
		&lr.CreatedAt, &lr.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &lr.EmployeeName, &lr.LeaveTypeName)
	}
	if err := row.Scan(dest...); err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, leave_type_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.UserID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `,
			   u.full_name AS employee_name,
			   lt.name AS leave_type_name
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND lr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND lr.end_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND lr.start_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+leaveRequestColumns+`,
			   u.full_name AS employee_name,
			   lt.name AS leave_type_name
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE %s
		ORDER BY lr.created_at DESC
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
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The pending
// predicate makes the transition atomic: of two concurrent approvals the
// second one re-evaluates against the committed row, matches zero rows and
// never reaches materialization.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejected_reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, lr.Status, lr.ApprovedBy, lr.ApprovedAt, lr.RejectedReason, lr.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveAlreadyProcessed
	}

	return nil
}

// CheckOverlapping implements leave.LeaveRequestRepository. Rejected
// requests do not block a new request for the same dates.
func (r *leaveRequestRepository) CheckOverlapping(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE user_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// Delete implements leave.LeaveRequestRepository. Used when an employee
// cancels a still-pending request.
func (r *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
