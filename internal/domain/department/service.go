package department

import "context"

type DepartmentService interface {
	Create(ctx context.Context, req UpsertDepartmentRequest) (DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, req UpsertDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}
