package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `
	id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	late_threshold_minutes, early_leave_minutes, is_active, created_at, updated_at`

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) settings.ShiftRepository {
	return &shiftRepository{db: db}
}

func scanShift(row pgx.Row) (settings.Shift, error) {
	var s settings.Shift
	err := row.Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime,
		&s.LateThresholdMinutes, &s.EarlyLeaveMinutes, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return settings.Shift{}, err
	}
	return s, nil
}

// Create implements settings.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s settings.Shift) (settings.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, late_threshold_minutes, early_leave_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name, s.StartTime, s.EndTime,
		s.LateThresholdMinutes, s.EarlyLeaveMinutes, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settings.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements settings.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (settings.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Shift{}, settings.ErrShiftNotFound
		}
		return settings.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetActive implements settings.ShiftRepository. When several shifts are
// flagged active the oldest wins, keeping check-in math deterministic.
func (r *shiftRepository) GetActive(ctx context.Context) (settings.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Shift{}, settings.ErrNoActiveShift
		}
		return settings.Shift{}, fmt.Errorf("failed to get active shift: %w", err)
	}

	return s, nil
}

// List implements settings.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]settings.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY start_time ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []settings.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

// Update implements settings.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s settings.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3,
			late_threshold_minutes = $4, early_leave_minutes = $5,
			is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		s.Name, s.StartTime, s.EndTime,
		s.LateThresholdMinutes, s.EarlyLeaveMinutes, s.IsActive, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settings.ErrShiftNotFound
	}

	return nil
}
