package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)

	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	UpdateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.CancelRequest(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// MyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.RequestFilter{
		Status:    queryString(r, "status"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	resp, err := h.leaveService.MyRequests(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list own leave requests", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.RequestFilter{
		UserID:    queryString(r, "user_id"),
		Status:    queryString(r, "status"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	resp, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list leave requests", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ApproveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", resp)
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.leaveService.RejectRequest(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", resp)
}

// CreateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created", resp)
}

// UpdateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.leaveService.UpdateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated", resp)
}

// ListLeaveTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		slog.Error("failed to list leave types", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
