package department

import (
	"context"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.UpsertDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	found, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(found), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpsertDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if err := s.DepartmentRepository.Update(ctx, existing); err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(existing), nil
}

// Delete implements department.DepartmentService.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}
