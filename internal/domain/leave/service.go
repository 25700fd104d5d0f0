package leave

import "context"

type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	CancelRequest(ctx context.Context, requestID string) error
	MyRequests(ctx context.Context, filter RequestFilter) (ListLeaveRequestsResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) (ListLeaveRequestsResponse, error)
	ApproveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, requestID string, reason string) (LeaveRequestResponse, error)

	CreateLeaveType(ctx context.Context, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
}
