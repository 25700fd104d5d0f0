package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/config"
	handler "github.com/chamcong-app/attendance-backend-go/internal/handler/http"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/cron"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/email"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/oauth"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/sse"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/storage"
	"github.com/chamcong-app/attendance-backend-go/internal/repository/postgresql"
	activitylogService "github.com/chamcong-app/attendance-backend-go/internal/service/activitylog"
	attendanceService "github.com/chamcong-app/attendance-backend-go/internal/service/attendance"
	authService "github.com/chamcong-app/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/chamcong-app/attendance-backend-go/internal/service/dashboard"
	departmentService "github.com/chamcong-app/attendance-backend-go/internal/service/department"
	employeeService "github.com/chamcong-app/attendance-backend-go/internal/service/employee"
	leaveService "github.com/chamcong-app/attendance-backend-go/internal/service/leave"
	reportService "github.com/chamcong-app/attendance-backend-go/internal/service/report"
	settingsService "github.com/chamcong-app/attendance-backend-go/internal/service/settings"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	location := cfg.Location()

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
		cfg.App.APIPrefix+"/auth",
	)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	// Optional infrastructure
	var alerts email.AlertService
	if cfg.SMTP.Host != "" {
		alerts, err = email.NewAlertService(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return fmt.Errorf("failed to build alert mailer: %w", err)
		}
	}

	var archive storage.Archive
	if cfg.Report.ArchiveDir != "" {
		localArchive, err := storage.NewLocalArchive(cfg.Report.ArchiveDir)
		if err != nil {
			return fmt.Errorf("failed to prepare report archive: %w", err)
		}
		archive = localArchive
	}

	hub := sse.NewHub()

	// Services
	recorder := activitylogService.NewRecorder(activityLogRepo, hub)
	authSvc := authService.NewAuthService(userRepo, jwtRepo, jwtService, recorder)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, shiftRepo, recorder)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		settingsRepo,
		shiftRepo,
		recorder,
		alerts,
		location,
		cfg.Attendance.CheckInDeadline,
		cfg.Attendance.AutoCheckoutAt,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveTypeRepo, attendanceRepo, recorder, location)
	reportSvc := reportService.NewReportService(reportRepo, archive, location)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, location)
	activityLogSvc := activitylogService.NewActivityLogService(activityLogRepo)

	// Handlers
	handlers := handler.Handlers{
		Auth: handler.NewAuthHandler(
			authSvc,
			googleService,
			jwtService,
			cfg.App.FrontendURL,
			cfg.App.APIPrefix+"/auth/oauth/callback/google",
		),
		Attendance:  handler.NewAttendanceHandler(attendanceSvc),
		Leave:       handler.NewLeaveHandler(leaveSvc),
		Employee:    handler.NewEmployeeHandler(employeeSvc),
		Department:  handler.NewDepartmentHandler(departmentSvc),
		Settings:    handler.NewSettingsHandler(settingsSvc),
		Report:      handler.NewReportHandler(reportSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		ActivityLog: handler.NewActivityLogHandler(activityLogSvc, hub),
	}

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:  cfg.App.APIPrefix,
		CORSOrigin: cfg.App.CORSOrigin,
		Env:        cfg.App.Env,
		LogLevel:   cfg.App.LogLevel,
	}, jwtService, handlers)

	// Background jobs
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, location, cfg.Attendance.AutoCheckoutAt).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	// No WriteTimeout: the activity-log SSE stream holds its response open
	// indefinitely.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.App.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
