package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// GetActive resolves the single shift check-in math runs against. The
	// shift table is generalized but the product operates on one active
	// administrative shift.
	GetActive(ctx context.Context) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
}
