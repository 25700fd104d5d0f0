package user

import (
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone"`
	Position     *string `json:"position"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if r.Role != "" && !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	Position     *string `json:"position"`
	Role         *string `json:"role"`
	DepartmentID *string `json:"department_id"`
	IsActive     *bool   `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name cannot be empty"})
	}
	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "current_password", Message: "current_password is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new password must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Search       *string
	DepartmentID *string
	Role         *string
	Page         int
	Limit        int
}

type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	Phone          *string `json:"phone,omitempty"`
	Position       *string `json:"position,omitempty"`
	Role           string  `json:"role"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Position:       u.Position,
		Role:           string(u.Role),
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
