package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, t LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, t LeaveType) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, int64, error)

	// UpdateStatus writes the status transition columns (status, approver,
	// rejected reason). Only pending requests transition; a request already
	// approved or rejected yields ErrLeaveAlreadyProcessed. Runs inside the
	// approval transaction.
	UpdateStatus(ctx context.Context, r LeaveRequest) error

	// CheckOverlapping reports whether the user already has a pending or
	// approved request intersecting [start, end].
	CheckOverlapping(ctx context.Context, userID string, start, end time.Time) (bool, error)

	Delete(ctx context.Context, id string) error
}
