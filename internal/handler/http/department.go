package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/department"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// Create implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.UpsertDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", resp)
}

// GetByID implements DepartmentHandler.
func (h *DepartmentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.departmentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.departmentService.List(r.Context())
	if err != nil {
		slog.Error("failed to list departments", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req department.UpsertDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.departmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", resp)
}

// Delete implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}
