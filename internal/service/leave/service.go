package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/utils"
	"github.com/chamcong-app/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveTypeRepository
	attendanceRepo attendance.AttendanceRepository
	recorder       activitylog.Recorder
	location       *time.Location
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	typeRepo leave.LeaveTypeRepository,
	attendanceRepo attendance.AttendanceRepository,
	recorder activitylog.Recorder,
	location *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: requestRepo,
		LeaveTypeRepository:    typeRepo,
		attendanceRepo:         attendanceRepo,
		recorder:               recorder,
		location:               location,
	}
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

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeInactive
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, s.location)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	overlaps, err := s.LeaveRequestRepository.CheckOverlapping(ctx, userID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if overlaps {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:      userID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	created.LeaveTypeName = &leaveType.Name

	s.recorder.Record(ctx, &userID, activitylog.ActionLeaveRequested,
		fmt.Sprintf("requested %s leave %s to %s", leaveType.Name, req.StartDate, req.EndDate))

	return leave.ToResponse(created), nil
}

// CancelRequest implements leave.LeaveService. Only the owner can cancel,
// and only while the request is still pending.
func (s *LeaveServiceImpl) CancelRequest(ctx context.Context, requestID string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.UserID != userID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.Delete(ctx, requestID); err != nil {
		return err
	}

	s.recorder.Record(ctx, &userID, activitylog.ActionLeaveCancelled,
		fmt.Sprintf("cancelled leave request %s", requestID))

	return nil
}

// MyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListLeaveRequestsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}
	filter.UserID = &userID

	return s.list(ctx, filter)
}

// ListRequests implements leave.LeaveService. Admin view across employees.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListLeaveRequestsResponse, error) {
	return s.list(ctx, filter)
}

func (s *LeaveServiceImpl) list(ctx context.Context, filter leave.RequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

// ApproveRequest implements leave.LeaveService. The status transition and
// the materialized on_leave attendance rows commit or roll back together.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var approved leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		now := time.Now().In(s.location)
		request.Status = leave.StatusApproved
		request.ApprovedBy = &adminID
		request.ApprovedAt = &now
		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, request); err != nil {
			return err
		}

		if err := s.materializeLeaveDays(txCtx, request); err != nil {
			return err
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.recorder.Record(ctx, &adminID, activitylog.ActionLeaveApproved,
		fmt.Sprintf("approved leave request %s of user %s", requestID, approved.UserID))

	return leave.ToResponse(approved), nil
}

// materializeLeaveDays writes one on_leave attendance row per day in the
// approved range. Days the employee already checked in on stay untouched;
// existing rows without a check-in are overwritten to on_leave.
func (s *LeaveServiceImpl) materializeLeaveDays(txCtx context.Context, request leave.LeaveRequest) error {
	var note *string
	if request.LeaveTypeName != nil {
		n := fmt.Sprintf("On leave: %s", *request.LeaveTypeName)
		note = &n
	}

	for day := utils.WorkDate(request.StartDate); !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		existing, err := s.attendanceRepo.GetByUserAndDate(txCtx, request.UserID, day)
		if err != nil {
			return err
		}

		if existing == nil {
			_, err := s.attendanceRepo.Create(txCtx, attendance.Attendance{
				UserID:   request.UserID,
				WorkDate: day,
				Status:   attendance.StatusOnLeave,
				Note:     note,
			})
			if err != nil {
				return err
			}
			continue
		}

		if existing.CheckIn != nil {
			continue
		}

		existing.Status = attendance.StatusOnLeave
		existing.Note = note
		if err := s.attendanceRepo.Update(txCtx, *existing); err != nil {
			return err
		}
	}
	return nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, requestID string, reason string) (leave.LeaveRequestResponse, error) {
	req := leave.RejectLeaveRequestRequest{Reason: reason}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now().In(s.location)
	request.Status = leave.StatusRejected
	request.ApprovedBy = &adminID
	request.ApprovedAt = &now
	request.RejectedReason = &reason
	if err := s.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.recorder.Record(ctx, &adminID, activitylog.ActionLeaveRejected,
		fmt.Sprintf("rejected leave request %s of user %s", requestID, request.UserID))

	return leave.ToResponse(request), nil
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.UpsertLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	newType := leave.LeaveType{
		Name:     req.Name,
		IsPaid:   true,
		IsActive: true,
	}
	if req.IsPaid != nil {
		newType.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		newType.IsActive = *req.IsActive
	}

	created, err := s.LeaveTypeRepository.Create(ctx, newType)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return leave.ToLeaveTypeResponse(created), nil
}

// UpdateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpsertLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	existing, err := s.LeaveTypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	existing.Name = req.Name
	if req.IsPaid != nil {
		existing.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.LeaveTypeRepository.Update(ctx, existing); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return leave.ToLeaveTypeResponse(existing), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.ToLeaveTypeResponse(t))
	}
	return responses, nil
}
