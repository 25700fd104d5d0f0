package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/department"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(u.id) AS employee_count
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.deleted_at IS NULL
		WHERE d.id = $1
		GROUP BY d.id
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(u.id) AS employee_count
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.deleted_at IS NULL
		GROUP BY d.id
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, d.Name, d.Description, d.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.ErrNameExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository. Deletion is blocked
// while employees are still assigned.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var count int64
	countQuery := `SELECT COUNT(*) FROM users WHERE department_id = $1 AND deleted_at IS NULL`
	if err := q.QueryRow(ctx, countQuery, id).Scan(&count); err != nil {
		return fmt.Errorf("failed to count department members: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentNotEmpty
	}

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
