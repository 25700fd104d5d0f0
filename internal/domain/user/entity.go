package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	Phone           *string
	Position        *string
	Role            Role
	DepartmentID    *string
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time

	// Joined fields
	DepartmentName *string
}
