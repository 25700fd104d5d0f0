package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. The table holds a single row
// with id = 1.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, company_address, company_email, company_phone,
			   gps_latitude, gps_longitude, max_distance_meters,
			   auto_alert_violation, updated_at
		FROM system_settings
		WHERE id = 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.CompanyAddress, &s.CompanyEmail, &s.CompanyPhone,
		&s.GPSLatitude, &s.GPSLongitude, &s.MaxDistanceMeters,
		&s.AutoAlertViolation, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Update implements settings.SettingsRepository. Only the fields present in
// the request are written; the updated row is returned.
func (r *settingsRepository) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.CompanyName != nil {
		updates = append(updates, fmt.Sprintf("company_name = $%d", argIdx))
		args = append(args, *req.CompanyName)
		argIdx++
	}
	if req.CompanyAddress != nil {
		updates = append(updates, fmt.Sprintf("company_address = $%d", argIdx))
		args = append(args, req.CompanyAddress)
		argIdx++
	}
	if req.CompanyEmail != nil {
		updates = append(updates, fmt.Sprintf("company_email = $%d", argIdx))
		args = append(args, req.CompanyEmail)
		argIdx++
	}
	if req.CompanyPhone != nil {
		updates = append(updates, fmt.Sprintf("company_phone = $%d", argIdx))
		args = append(args, req.CompanyPhone)
		argIdx++
	}
	if req.GPSLatitude != nil {
		updates = append(updates, fmt.Sprintf("gps_latitude = $%d", argIdx))
		args = append(args, req.GPSLatitude)
		argIdx++
	}
	if req.GPSLongitude != nil {
		updates = append(updates, fmt.Sprintf("gps_longitude = $%d", argIdx))
		args = append(args, req.GPSLongitude)
		argIdx++
	}
	if req.MaxDistanceMeters != nil {
		updates = append(updates, fmt.Sprintf("max_distance_meters = $%d", argIdx))
		args = append(args, req.MaxDistanceMeters)
		argIdx++
	}
	if req.AutoAlertViolation != nil {
		updates = append(updates, fmt.Sprintf("auto_alert_violation = $%d", argIdx))
		args = append(args, *req.AutoAlertViolation)
		argIdx++
	}

	if len(updates) == 0 {
		return r.Get(ctx)
	}

	updates = append(updates, "updated_at = NOW()")

	query := "UPDATE system_settings SET " + strings.Join(updates, ", ") + `
		WHERE id = 1
		RETURNING id, company_name, company_address, company_email, company_phone,
				  gps_latitude, gps_longitude, max_distance_meters,
				  auto_alert_violation, updated_at
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.CompanyName, &s.CompanyAddress, &s.CompanyEmail, &s.CompanyPhone,
		&s.GPSLatitude, &s.GPSLongitude, &s.MaxDistanceMeters,
		&s.AutoAlertViolation, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return s, nil
}
