package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

type LeaveType struct {
	ID        string
	Name      string
	IsPaid    bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveRequest transitions pending -> approved or pending -> rejected, both
// irreversible. Approval materializes on_leave attendance rows across the
// date range.
type LeaveRequest struct {
	ID             string
	UserID         string
	LeaveTypeID    string
	StartDate      time.Time
	EndDate        time.Time
	Reason         *string
	Status         RequestStatus
	ApprovedBy     *string
	ApprovedAt     *time.Time
	RejectedReason *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
}

// TotalDays counts the calendar days in [StartDate, EndDate], inclusive.
func (r LeaveRequest) TotalDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
