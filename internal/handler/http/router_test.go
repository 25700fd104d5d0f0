package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chamcong-app/attendance-backend-go/internal/pkg/jwt"
)

func newTestRouter() http.Handler {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h", "/api/v1/auth")
	h := Handlers{
		Auth:        NewAuthHandler(nil, nil, jwtService, "http://localhost:3000", "/api/v1/auth/oauth/callback/google"),
		Attendance:  NewAttendanceHandler(nil),
		Leave:       NewLeaveHandler(nil),
		Employee:    NewEmployeeHandler(nil),
		Department:  NewDepartmentHandler(nil),
		Settings:    NewSettingsHandler(nil),
		Report:      NewReportHandler(nil),
		Dashboard:   NewDashboardHandler(nil),
		ActivityLog: NewActivityLogHandler(nil, nil),
	}
	return NewRouter(RouterConfig{
		APIPrefix:  "/api/v1",
		CORSOrigin: "http://localhost:3000",
		Env:        "test",
		LogLevel:   "error",
	}, jwtService, h)
}

// Protected routes reject an unauthenticated request with 401; a path that
// is not routed at all falls through to 404. That difference is enough to
// pin the route table without invoking any handler.
func TestRouterRouteTable(t *testing.T) {
	router := newTestRouter()

	registered := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/attendance/checkin"},
		{http.MethodPost, "/api/v1/attendance/checkout"},
		{http.MethodGet, "/api/v1/attendance/today"},
		{http.MethodGet, "/api/v1/attendance/history"},
		{http.MethodGet, "/api/v1/attendance/admin/all"},
		{http.MethodPost, "/api/v1/leave-requests"},
		{http.MethodPost, "/api/v1/leave-requests/req-1/approve"},
		{http.MethodPost, "/api/v1/leave-requests/req-1/reject"},
		{http.MethodGet, "/api/v1/settings/settings"},
		{http.MethodPut, "/api/v1/settings/settings"},
		{http.MethodGet, "/api/v1/settings/shifts"},
		{http.MethodGet, "/api/v1/reports/admin"},
		{http.MethodGet, "/api/v1/reports/admin/export/excel"},
		{http.MethodGet, "/api/v1/reports/admin/export/pdf"},
		{http.MethodGet, "/api/v1/dashboard/admin"},
		{http.MethodGet, "/api/v1/activity-logs"},
	}
	for _, route := range registered {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("unknown path is not routed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health check is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
