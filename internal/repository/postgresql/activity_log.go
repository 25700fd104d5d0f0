package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
)

type activityLogRepository struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activitylog.Repository {
	return &activityLogRepository{db: db}
}

// Create implements activitylog.Repository. Always runs against the pool,
// never a caller's transaction, so an audit failure cannot roll back the
// business write.
func (r *activityLogRepository) Create(ctx context.Context, e activitylog.Entry) error {
	query := `
		INSERT INTO activity_logs (user_id, action, detail)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, e.UserID, e.Action, e.Detail)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// List implements activitylog.Repository.
func (r *activityLogRepository) List(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND al.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Action != nil && *filter.Action != "" {
		baseWhere += fmt.Sprintf(" AND al.action = $%d", argIdx)
		args = append(args, *filter.Action)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM activity_logs al WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT al.id, al.user_id, al.action, al.detail, al.created_at,
			   u.full_name AS user_name
		FROM activity_logs al
		LEFT JOIN users u ON u.id = al.user_id
		WHERE %s
		ORDER BY al.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var entries []activitylog.Entry
	for rows.Next() {
		var e activitylog.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Detail, &e.CreatedAt, &e.UserName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
