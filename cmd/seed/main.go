// Command seed provisions a fresh database with the default shift, leave
// types, departments and a bootstrap admin account. It is idempotent: rows
// that already exist are left untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chamcong-app/attendance-backend-go/internal/config"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/fixtures"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong-app/attendance-backend-go/internal/repository/postgresql"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	settingsRepo := postgresql.NewSettingsRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	companyName := envOr("SEED_COMPANY_NAME", "Công ty TNHH Chấm Công")
	if _, err := settingsRepo.Update(ctx, fixtures.DefaultSettings(companyName)); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	slog.Info("seeded settings", "company_name", companyName)

	existingShifts, err := shiftRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shifts: %w", err)
	}
	if len(existingShifts) == 0 {
		shift, err := shiftRepo.Create(ctx, fixtures.DefaultShift())
		if err != nil {
			return fmt.Errorf("failed to seed shift: %w", err)
		}
		slog.Info("seeded shift", "name", shift.Name, "start", shift.StartTime, "end", shift.EndTime)
	}

	existingTypes, err := leaveTypeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave types: %w", err)
	}
	if len(existingTypes) == 0 {
		for _, lt := range fixtures.DefaultLeaveTypes() {
			if _, err := leaveTypeRepo.Create(ctx, lt); err != nil {
				return fmt.Errorf("failed to seed leave type %q: %w", lt.Name, err)
			}
		}
		slog.Info("seeded leave types", "count", len(fixtures.DefaultLeaveTypes()))
	}

	existingDepartments, err := departmentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}
	if len(existingDepartments) == 0 {
		for _, d := range fixtures.DefaultDepartments() {
			if _, err := departmentRepo.Create(ctx, d); err != nil {
				return fmt.Errorf("failed to seed department %q: %w", d.Name, err)
			}
		}
		slog.Info("seeded departments", "count", len(fixtures.DefaultDepartments()))
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@chamcong.local")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	generated := false
	if adminPassword == "" {
		adminPassword = uuid.NewString()
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := userRepo.Create(ctx, fixtures.AdminSeed(adminEmail, string(hash))); err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			slog.Info("admin account already exists", "email", adminEmail)
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	slog.Info("seeded admin account", "email", adminEmail)
	if generated {
		// Printed once so the operator can log in and rotate it.
		fmt.Printf("generated admin password: %s\n", adminPassword)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
