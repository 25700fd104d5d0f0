package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `
	u.id, u.email, u.password_hash, u.full_name, u.phone, u.position, u.role,
	u.department_id, u.oauth_provider, u.oauth_provider_id, u.is_active,
	u.created_at, u.updated_at, u.deleted_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row, withDepartment bool) (user.User, error) {
	var u user.User
	dest := []interface{}{
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Position, &u.Role,
		&u.DepartmentID, &u.OAuthProvider, &u.OAuthProviderID, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	}
	if withDepartment {
		dest = append(dest, &u.DepartmentName)
	}
	if err := row.Scan(dest...); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			email, password_hash, full_name, phone, position, role,
			department_id, oauth_provider, oauth_provider_id, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.Phone,
		u.Position,
		u.Role,
		u.DepartmentID,
		u.OAuthProvider,
		u.OAuthProviderID,
		u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `,
			   d.name AS department_name
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`

	found, err := scanUser(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `,
			   d.name AS department_name
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE LOWER(u.email) = LOWER($1) AND u.deleted_at IS NULL
	`

	found, err := scanUser(q.QueryRow(ctx, query, email), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "u.deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (u.full_name ILIKE $%d OR u.email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND u.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND u.role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM users u WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+userColumns+`,
			   d.name AS department_name
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE %s
		ORDER BY u.full_name ASC
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
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, total, nil
}

// Update implements user.UserRepository. Only the fields present in the
// request are written.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, req.Phone)
		argIdx++
	}
	if req.Position != nil {
		updates = append(updates, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, req.Position)
		argIdx++
	}
	if req.Role != nil {
		updates = append(updates, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}
	if req.DepartmentID != nil {
		updates = append(updates, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, req.DepartmentID)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, req.ID)

	query := "UPDATE users SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argIdx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SoftDelete implements user.UserRepository. The row is kept so historical
// attendance joins keep resolving the employee name.
func (r *userRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET deleted_at = NOW(), is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
