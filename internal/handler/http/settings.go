package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", resp)
}

// CreateShift implements SettingsHandler.
func (h *SettingsHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.settingsService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", resp)
}

// ListShifts implements SettingsHandler.
func (h *SettingsHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.ListShifts(r.Context())
	if err != nil {
		slog.Error("failed to list shifts", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateShift implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.settingsService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", resp)
}
