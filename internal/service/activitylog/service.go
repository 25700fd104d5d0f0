package activitylog

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/sse"
)

type ActivityLogServiceImpl struct {
	activitylog.Repository
}

func NewActivityLogService(repo activitylog.Repository) activitylog.Service {
	return &ActivityLogServiceImpl{Repository: repo}
}

// List implements activitylog.Service.
func (s *ActivityLogServiceImpl) List(ctx context.Context, filter activitylog.ListFilter) (activitylog.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	entries, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return activitylog.ListResponse{}, err
	}

	responses := make([]activitylog.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, activitylog.ToResponse(e))
	}

	return activitylog.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

// StreamTopic is the hub topic the admin live feed subscribes to.
const StreamTopic = "activity"

// Recorder writes audit entries without ever failing the caller. Errors are
// logged and swallowed. Each entry is also pushed to the live feed hub.
type Recorder struct {
	repo activitylog.Repository
	hub  *sse.Hub
}

func NewRecorder(repo activitylog.Repository, hub *sse.Hub) *Recorder {
	return &Recorder{repo: repo, hub: hub}
}

// Record implements activitylog.Recorder.
func (r *Recorder) Record(ctx context.Context, userID *string, action string, detail string) {
	entry := activitylog.Entry{
		UserID: userID,
		Action: action,
	}
	if detail != "" {
		entry.Detail = &detail
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		slog.Warn("failed to write activity log", "action", action, "error", err)
	}

	if r.hub != nil {
		payload := map[string]interface{}{
			"action":     action,
			"created_at": time.Now().Format("2006-01-02 15:04:05"),
		}
		if userID != nil {
			payload["user_id"] = *userID
		}
		if detail != "" {
			payload["detail"] = detail
		}
		r.hub.Publish(StreamTopic, sse.Event{Name: action, Data: payload})
	}
}
