package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	Today(ctx context.Context) (*AttendanceResponse, error)
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)
	AdminList(ctx context.Context, filter AdminFilter) (ListAttendanceResponse, error)
	AdminUpdate(ctx context.Context, req AdminUpdateRequest) (AttendanceResponse, error)

	// RunAutoCheckout force-closes every still-open record for now's work
	// date and returns how many rows were closed. Called by the cron job at
	// the configured cutoff.
	RunAutoCheckout(ctx context.Context, now time.Time) (int, error)
}
