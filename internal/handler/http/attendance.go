package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	AdminUpdate(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

// Today implements AttendanceHandler. A day without any record returns a null
// payload rather than 404 so the client can render the pre-check-in state.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Today(r.Context())
	if err != nil {
		slog.Error("failed to load today's attendance", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Status:    queryString(r, "status"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	resp, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list attendance history", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AdminList implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AdminFilter{
		UserID:       queryString(r, "user_id"),
		EmployeeName: queryString(r, "employee_name"),
		DepartmentID: queryString(r, "department_id"),
		Date:         queryString(r, "date"),
		StartDate:    queryString(r, "start_date"),
		EndDate:      queryString(r, "end_date"),
		Status:       queryString(r, "status"),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 20),
	}

	resp, err := h.attendanceService.AdminList(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list attendance records", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AdminUpdate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	var req attendance.AdminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.attendanceService.AdminUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", resp)
}
