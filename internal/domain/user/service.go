package user

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, filter ListFilter) (ListUsersResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error

	// Me returns the authenticated user's own profile.
	Me(ctx context.Context) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

type ListUsersResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Users      []UserResponse `json:"users"`
}
