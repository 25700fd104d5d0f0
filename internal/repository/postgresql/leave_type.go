package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) Create(ctx context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (name, is_paid, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.IsPaid, t.IsActive).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return t, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_paid, is_active, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var t leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.IsPaid, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return t, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_paid, is_active, created_at, updated_at
		FROM leave_types
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var t leave.LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.IsPaid, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, t)
	}

	return types, nil
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) Update(ctx context.Context, t leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $1, is_paid = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, t.Name, t.IsPaid, t.IsActive, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
