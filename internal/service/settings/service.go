package settings

import (
	"context"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	shiftRepo settings.ShiftRepository
	recorder  activitylog.Recorder
}

func NewSettingsService(settingsRepo settings.SettingsRepository, shiftRepo settings.ShiftRepository, recorder activitylog.Recorder) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepo,
		shiftRepo:          shiftRepo,
		recorder:           recorder,
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

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.ToSettingsResponse(current), nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	updated, err := s.SettingsRepository.Update(ctx, req)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	s.recorder.Record(ctx, &adminID, activitylog.ActionSettingsUpdated, "updated system settings")

	return settings.ToSettingsResponse(updated), nil
}

// CreateShift implements settings.SettingsService.
func (s *SettingsServiceImpl) CreateShift(ctx context.Context, req settings.UpsertShiftRequest) (settings.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.ShiftResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return settings.ShiftResponse{}, err
	}

	newShift := settings.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.LateThresholdMinutes != nil {
		newShift.LateThresholdMinutes = *req.LateThresholdMinutes
	}
	if req.EarlyLeaveMinutes != nil {
		newShift.EarlyLeaveMinutes = *req.EarlyLeaveMinutes
	}
	if req.IsActive != nil {
		newShift.IsActive = *req.IsActive
	}

	created, err := s.shiftRepo.Create(ctx, newShift)
	if err != nil {
		return settings.ShiftResponse{}, err
	}

	s.recorder.Record(ctx, &adminID, activitylog.ActionShiftUpdated,
		fmt.Sprintf("created shift %q (%s-%s)", created.Name, created.StartTime, created.EndTime))

	return settings.ToShiftResponse(created), nil
}

// ListShifts implements settings.SettingsService.
func (s *SettingsServiceImpl) ListShifts(ctx context.Context) ([]settings.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]settings.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, settings.ToShiftResponse(shift))
	}
	return responses, nil
}

// UpdateShift implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateShift(ctx context.Context, req settings.UpsertShiftRequest) (settings.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.ShiftResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return settings.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return settings.ShiftResponse{}, err
	}

	existing.Name = req.Name
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	if req.LateThresholdMinutes != nil {
		existing.LateThresholdMinutes = *req.LateThresholdMinutes
	}
	if req.EarlyLeaveMinutes != nil {
		existing.EarlyLeaveMinutes = *req.EarlyLeaveMinutes
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return settings.ShiftResponse{}, err
	}

	s.recorder.Record(ctx, &adminID, activitylog.ActionShiftUpdated,
		fmt.Sprintf("updated shift %q (%s-%s)", existing.Name, existing.StartTime, existing.EndTime))

	return settings.ToShiftResponse(existing), nil
}
