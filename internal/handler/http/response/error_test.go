package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"check-in closed", attendance.ErrCheckInClosed, http.StatusBadRequest},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusBadRequest},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"gps required", attendance.ErrGPSRequired, http.StatusBadRequest},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"email exists", user.ErrEmailExists, http.StatusConflict},
		{"leave already processed", leave.ErrLeaveAlreadyProcessed, http.StatusConflict},
		{"wrapped sentinel", errors.Join(errors.New("context"), attendance.ErrAlreadyCheckedIn), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "start_date", Message: "start_date must be a valid date"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "start_date")
}

func TestHandleErrorGeofence(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &attendance.GeofenceError{DistanceMeters: 820, MaxMeters: 100})

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "820", body.Error.Details["distance_meters"])
	assert.Equal(t, "100", body.Error.Details["max_meters"])
}
