package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/department"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence violations carry the offending distance for the client.
	var geofenceErr *attendance.GeofenceError
	if errors.As(err, &geofenceErr) {
		Forbidden(w, geofenceErr.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.0f", geofenceErr.DistanceMeters),
			"max_meters":      fmt.Sprintf("%d", geofenceErr.MaxMeters),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie missing")
	case errors.Is(err, auth.ErrGoogleAccountNotRegistered):
		Forbidden(w, "Google account is not linked to any employee", nil)
	case errors.Is(err, auth.ErrGoogleEmailNotVerified):
		Forbidden(w, "Google account email is not verified", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required", nil)
	case errors.Is(err, user.ErrWrongCurrentPassword):
		BadRequest(w, "Current password is incorrect", nil)

	// Attendance domain errors. Time-window and duplicate check-in/out
	// violations are business-rule failures, not conflicts: all 400.
	case errors.Is(err, attendance.ErrCheckInClosed):
		BadRequest(w, "Check-in is closed for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "You have already checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "You have already checked out today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in today", nil)
	case errors.Is(err, attendance.ErrGPSRequired):
		BadRequest(w, "GPS coordinates are required to check in", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "Check-out cannot be before check-in", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		BadRequest(w, "Leave type is inactive", nil)
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrRejectReasonRequired):
		BadRequest(w, "A reason is required to reject a leave request", nil)
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "System settings not found")
	case errors.Is(err, settings.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, settings.ErrNoActiveShift):
		NotFound(w, "No active shift configured")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
