package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/email"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/utils"
	"github.com/chamcong-app/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	settingsRepo settings.SettingsRepository
	shiftRepo    settings.ShiftRepository
	recorder     activitylog.Recorder
	alerts       email.AlertService

	location        *time.Location
	checkInDeadline string
	autoCheckoutAt  string
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo settings.SettingsRepository,
	shiftRepo settings.ShiftRepository,
	recorder activitylog.Recorder,
	alerts email.AlertService,
	location *time.Location,
	checkInDeadline string,
	autoCheckoutAt string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		settingsRepo:         settingsRepo,
		shiftRepo:            shiftRepo,
		recorder:             recorder,
		alerts:               alerts,
		location:             location,
		checkInDeadline:      checkInDeadline,
		autoCheckoutAt:       autoCheckoutAt,
	}
}

// notifyGeofenceViolation emails the company inbox when an employee is
// rejected for being outside the allowed radius. Fires only when the admin
// enabled violation alerts; never blocks or fails the check-in path.
func (a *AttendanceServiceImpl) notifyGeofenceViolation(ctx context.Context, sysSettings settings.Settings, violation *attendance.GeofenceError) {
	if a.alerts == nil || !sysSettings.AutoAlertViolation || sysSettings.CompanyEmail == nil {
		return
	}

	employeeEmail := ""
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		employeeEmail, _ = claims["email"].(string)
	}

	to := *sysSettings.CompanyEmail
	occurredAt := time.Now().In(a.location)
	go func() {
		if err := a.alerts.SendGeofenceAlert(to, employeeEmail, violation.DistanceMeters, violation.MaxMeters, occurredAt); err != nil {
			slog.Warn("failed to send geofence alert", "error", err)
		}
	}()
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

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func (a *AttendanceServiceImpl) toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:             att.ID,
		UserID:         att.UserID,
		EmployeeName:   att.EmployeeName,
		DepartmentName: att.DepartmentName,
		WorkDate:       att.WorkDate.Format("2006-01-02"),
		CheckIn:        timePtrToString(att.CheckIn, a.location),
		CheckOut:       timePtrToString(att.CheckOut, a.location),
		TotalHours:     att.TotalHours,
		LateMinutes:    att.LateMinutes,
		Status:         string(att.Status),
		Latitude:       att.Latitude,
		Longitude:      att.Longitude,
		LocationAddr:   att.LocationAddress,
		IsAutoCheckout: att.IsAutoCheckout,
		Note:           att.Note,
	}
}

// activeShift resolves the shift check-in math runs against. A missing
// shift is not an error; lateness simply cannot accrue.
func (a *AttendanceServiceImpl) activeShift(ctx context.Context) (*settings.Shift, error) {
	shift, err := a.shiftRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrNoActiveShift) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}
	return &shift, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := time.Now().In(a.location)

	open, err := checkInOpen(nowLocal, a.checkInDeadline)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid check-in deadline configuration: %w", err)
	}
	if !open {
		return attendance.AttendanceResponse{}, attendance.ErrCheckInClosed
	}

	sysSettings, err := a.settingsRepo.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := validateLocation(sysSettings, req.Latitude, req.Longitude); err != nil {
		var violation *attendance.GeofenceError
		if errors.As(err, &violation) {
			a.notifyGeofenceViolation(ctx, sysSettings, violation)
		}
		return attendance.AttendanceResponse{}, err
	}

	shift, err := a.activeShift(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	lateMinutes, status, err := lateness(nowLocal, shift)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid shift start time: %w", err)
	}

	workDate := utils.WorkDate(nowLocal)
	checkInAt := nowLocal

	var saved attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		// The row lock serializes concurrent check-ins for the same user
		// and day.
		existing, err := a.AttendanceRepository.GetByUserAndDateForUpdate(txCtx, userID, workDate)
		if err != nil {
			return err
		}

		if existing != nil {
			if existing.CheckIn != nil {
				return attendance.ErrAlreadyCheckedIn
			}

			// A leave or absence row already exists for today; the employee
			// showed up anyway, so the row becomes a normal working record.
			existing.CheckIn = &checkInAt
			existing.LateMinutes = lateMinutes
			existing.Status = status
			existing.Latitude = req.Latitude
			existing.Longitude = req.Longitude
			existing.LocationAccuracy = req.Accuracy
			existing.LocationAddress = req.Address
			existing.Note = req.Note
			if err := a.AttendanceRepository.Update(txCtx, *existing); err != nil {
				return err
			}
			saved = *existing
			return nil
		}

		created, err := a.AttendanceRepository.Create(txCtx, attendance.Attendance{
			UserID:           userID,
			WorkDate:         workDate,
			CheckIn:          &checkInAt,
			LateMinutes:      lateMinutes,
			Status:           status,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			LocationAccuracy: req.Accuracy,
			LocationAddress:  req.Address,
			Note:             req.Note,
		})
		if err != nil {
			return err
		}
		saved = created
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, &userID, activitylog.ActionCheckIn,
		fmt.Sprintf("checked in at %s (%d min late)", checkInAt.Format("15:04"), lateMinutes))

	return a.toResponse(saved), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := time.Now().In(a.location)
	workDate := utils.WorkDate(nowLocal)

	sysSettings, err := a.settingsRepo.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := validateLocation(sysSettings, req.Latitude, req.Longitude); err != nil {
		var violation *attendance.GeofenceError
		if errors.As(err, &violation) {
			a.notifyGeofenceViolation(ctx, sysSettings, violation)
		}
		return attendance.AttendanceResponse{}, err
	}

	var saved attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByUserAndDateForUpdate(txCtx, userID, workDate)
		if err != nil {
			return err
		}
		if existing == nil || existing.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if existing.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		checkOutAt := nowLocal
		total := workedHours(existing.CheckIn.In(a.location), checkOutAt)

		existing.CheckOut = &checkOutAt
		existing.TotalHours = &total
		if req.Note != nil {
			existing.Note = req.Note
		}
		if err := a.AttendanceRepository.Update(txCtx, *existing); err != nil {
			return err
		}
		saved = *existing
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, &userID, activitylog.ActionCheckOut,
		fmt.Sprintf("checked out at %s", nowLocal.Format("15:04")))

	return a.toResponse(saved), nil
}

// Today implements attendance.AttendanceService. Returns nil when the user
// has no record yet for the current work date.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.AttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workDate := utils.WorkDate(time.Now().In(a.location))
	att, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, workDate)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}

	resp := a.toResponse(*att)
	return &resp, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.toListResponse(records, total, filter.Page, filter.Limit), nil
}

// AdminList implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AdminList(ctx context.Context, filter attendance.AdminFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.toListResponse(records, total, filter.Page, filter.Limit), nil
}

func (a *AttendanceServiceImpl) toListResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, a.toResponse(att))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		Attendances: responses,
	}
}

// AdminUpdate implements attendance.AttendanceService. Manual corrections
// recompute derived fields from the edited timestamps.
func (a *AttendanceServiceImpl) AdminUpdate(ctx context.Context, req attendance.AdminUpdateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckIn != nil {
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", *req.CheckIn, a.location)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.CheckIn = &parsed

		shift, err := a.activeShift(ctx)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		lateMinutes, status, err := lateness(parsed, shift)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.LateMinutes = lateMinutes
		att.Status = status
	}
	if req.CheckOut != nil {
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", *req.CheckOut, a.location)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.CheckOut = &parsed
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Note != nil {
		att.Note = req.Note
	}

	if att.CheckIn != nil && att.CheckOut != nil {
		if att.CheckOut.Before(*att.CheckIn) {
			return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
		}
		total := workedHours(*att.CheckIn, *att.CheckOut)
		att.TotalHours = &total
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, &adminID, activitylog.ActionAdminEdit,
		fmt.Sprintf("edited attendance %s of user %s", att.ID, att.UserID))

	return a.toResponse(att), nil
}

// RunAutoCheckout implements attendance.AttendanceService. Each open row is
// closed at the configured cutoff time; one failing row does not stop the
// rest.
func (a *AttendanceServiceImpl) RunAutoCheckout(ctx context.Context, now time.Time) (int, error) {
	nowLocal := now.In(a.location)
	workDate := utils.WorkDate(nowLocal)

	cutoff, err := utils.ParseWallClock(a.autoCheckoutAt, nowLocal)
	if err != nil {
		return 0, fmt.Errorf("invalid auto-checkout configuration: %w", err)
	}

	open, err := a.AttendanceRepository.ListOpenForAutoCheckout(ctx, workDate)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, att := range open {
		checkOutAt := cutoff
		// Checked in after the cutoff: close at the check-in moment with
		// zero hours instead of producing a negative span.
		if att.CheckIn.After(cutoff) {
			checkOutAt = *att.CheckIn
		}

		total := workedHours(att.CheckIn.In(a.location), checkOutAt)
		att.CheckOut = &checkOutAt
		att.TotalHours = &total
		att.IsAutoCheckout = true

		if err := a.AttendanceRepository.Update(ctx, att); err != nil {
			slog.Error("auto-checkout failed for row",
				"attendance_id", att.ID,
				"user_id", att.UserID,
				"error", err)
			continue
		}

		a.recorder.Record(ctx, &att.UserID, activitylog.ActionAutoCheckOut,
			fmt.Sprintf("auto-closed attendance for %s", workDate.Format("2006-01-02")))
		closed++
	}

	return closed, nil
}
