package settings

import "context"

type SettingsService interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	CreateShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
}
