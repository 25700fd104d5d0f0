package department

import (
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type UpsertDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *UpsertDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	EmployeeCount int64   `json:"employee_count"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
	}
}
