package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/middleware"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	APIPrefix  string
	CORSOrigin string
	Env        string
	LogLevel   string
}

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Employee    EmployeeHandler
	Department  DepartmentHandler
	Settings    SettingsHandler
	Report      ReportHandler
	Dashboard   DashboardHandler
	ActivityLog ActivityLogHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route(cfg.APIPrefix, func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin/all", h.Attendance.AdminList)
					r.Put("/admin/{id}", h.Attendance.AdminUpdate)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/my", h.Leave.MyRequests)
				r.Delete("/{id}", h.Leave.CancelRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListRequests)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListLeaveTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Leave.CreateLeaveType)
					r.Put("/{id}", h.Leave.UpdateLeaveType)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)
				r.Put("/me/change-password", h.Employee.ChangePassword)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.GetByID)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.Create)
					r.Get("/{id}", h.Department.GetByID)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/settings", h.Settings.Get)
				r.Get("/shifts", h.Settings.ListShifts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/settings", h.Settings.Update)
					r.Post("/shifts", h.Settings.CreateShift)
					r.Put("/shifts/{id}", h.Settings.UpdateShift)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/admin", h.Report.MonthlyAttendance)
				r.Get("/admin/export/{format}", h.Report.ExportMonthlyAttendance)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee", h.Dashboard.EmployeeSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin", h.Dashboard.AdminSummary)
				})
			})

			r.Route("/activity-logs", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.ActivityLog.List)
				r.Get("/stream", h.ActivityLog.Stream)
			})
		})
	})

	return r
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
