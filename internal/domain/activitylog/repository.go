package activitylog

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, filter ListFilter) ([]Entry, int64, error)
}

// Recorder is the write-only view services use for best-effort audit
// writes. Implementations must not fail the caller's operation.
type Recorder interface {
	Record(ctx context.Context, userID *string, action string, detail string)
}
