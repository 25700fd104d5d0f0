package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/dashboard"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// AdminSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.AdminSummary(r.Context())
	if err != nil {
		slog.Error("failed to build admin dashboard", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.dashboardService.EmployeeSummary(r.Context(), userID)
	if err != nil {
		slog.Error("failed to build employee dashboard", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
