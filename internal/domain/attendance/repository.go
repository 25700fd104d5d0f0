package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns the record for (userID, workDate), or nil when
	// none exists.
	GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*Attendance, error)

	// GetByUserAndDateForUpdate behaves like GetByUserAndDate but locks the
	// row (SELECT ... FOR UPDATE). Must only be called with a
	// transaction-bound context; this is the guard against two concurrent
	// check-ins for the same user and day.
	GetByUserAndDateForUpdate(ctx context.Context, userID string, workDate time.Time) (*Attendance, error)

	// Update rewrites the mutable columns of an existing record
	Update(ctx context.Context, att Attendance) error

	// ListByUser retrieves one employee's records with filters and pagination
	ListByUser(ctx context.Context, userID string, filter HistoryFilter) ([]Attendance, int64, error)

	// List retrieves records across all employees (admin view)
	List(ctx context.Context, filter AdminFilter) ([]Attendance, int64, error)

	// ListOpenForAutoCheckout returns the rows the nightly auto-checkout job
	// closes: checked in on workDate, not checked out, not already auto
	// closed.
	ListOpenForAutoCheckout(ctx context.Context, workDate time.Time) ([]Attendance, error)
}
