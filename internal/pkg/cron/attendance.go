package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs closes forgotten attendance sessions at the configured
// cutoff wall-clock time.
type AttendanceJobs struct {
	attendanceSvc  attendance.AttendanceService
	location       *time.Location
	autoCheckoutAt string
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, location *time.Location, autoCheckoutAt string) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc:  attendanceSvc,
		location:       location,
		autoCheckoutAt: autoCheckoutAt,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_open_attendances", 1*time.Hour, j.AutoCheckout)
}

// AutoCheckout runs hourly but only acts during the cutoff hour. The
// service stamps every closed row with the cutoff time itself, so running
// late within the hour does not inflate worked hours.
func (j *AttendanceJobs) AutoCheckout(ctx context.Context) error {
	now := time.Now().In(j.location)

	cutoff, err := time.Parse("15:04", j.autoCheckoutAt)
	if err != nil {
		return err
	}
	if now.Hour() != cutoff.Hour() {
		return nil
	}

	slog.Info("Cron: Starting auto-checkout job", "work_date", now.Format("2006-01-02"))

	closed, err := j.attendanceSvc.RunAutoCheckout(ctx, now)
	if err != nil {
		return err
	}

	slog.Info("Cron: Auto-checkout completed", "closed", closed)
	return nil
}
