package employee

import (
	"context"
	"fmt"
	"math"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepo user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{UserRepository: userRepo}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// Create implements user.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Position:     req.Position,
		Role:         role,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetByID implements user.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter user.ListFilter) (user.ListUsersResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return user.ListUsersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Users:      responses,
	}, nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// Delete implements user.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.UserRepository.SoftDelete(ctx, id)
}

// Me implements user.EmployeeService.
func (s *EmployeeServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.GetByID(ctx, userID)
}

// ChangePassword implements user.EmployeeService.
func (s *EmployeeServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if found.PasswordHash == nil {
		return user.ErrWrongCurrentPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}
