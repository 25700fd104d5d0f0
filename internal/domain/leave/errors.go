package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrLeaveTypeInactive     = errors.New("leave type is inactive")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrOverlappingLeave      = errors.New("an overlapping leave request already exists")
	ErrRejectReasonRequired  = errors.New("a reason is required to reject a leave request")
	ErrNotRequestOwner       = errors.New("leave request belongs to another employee")
)
