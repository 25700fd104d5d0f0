package leave

import (
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "leave_type_id is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date cannot be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{Field: "reason", Message: "reason is required"}}
	}
	return nil
}

type UpsertLeaveTypeRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	IsPaid   *bool  `json:"is_paid"`
	IsActive *bool  `json:"is_active"`
}

func (r *UpsertLeaveTypeRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}

type RequestFilter struct {
	UserID    *string
	Status    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	LeaveTypeID    string  `json:"leave_type_id"`
	LeaveTypeName  *string `json:"leave_type_name,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalDays      int     `json:"total_days"`
	Reason         *string `json:"reason,omitempty"`
	Status         string  `json:"status"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	ApprovedAt     *string `json:"approved_at,omitempty"`
	RejectedReason *string `json:"rejected_reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		EmployeeName:   r.EmployeeName,
		LeaveTypeID:    r.LeaveTypeID,
		LeaveTypeName:  r.LeaveTypeName,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		TotalDays:      r.TotalDays(),
		Reason:         r.Reason,
		Status:         string(r.Status),
		ApprovedBy:     r.ApprovedBy,
		RejectedReason: r.RejectedReason,
		CreatedAt:      r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.ApprovedAt != nil {
		formatted := r.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &formatted
	}
	return resp
}

type LeaveTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsPaid   bool   `json:"is_paid"`
	IsActive bool   `json:"is_active"`
}

func ToLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:       t.ID,
		Name:     t.Name,
		IsPaid:   t.IsPaid,
		IsActive: t.IsActive,
	}
}

type ListLeaveRequestsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
