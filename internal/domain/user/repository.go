package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SoftDelete(ctx context.Context, id string) error
}
