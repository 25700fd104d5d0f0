package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
	activitylogService "github.com/chamcong-app/attendance-backend-go/internal/service/activitylog"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/sse"
)

type ActivityLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type ActivityLogHandlerImpl struct {
	activityLogService activitylog.Service
	hub                *sse.Hub
}

func NewActivityLogHandler(activityLogService activitylog.Service, hub *sse.Hub) ActivityLogHandler {
	return &ActivityLogHandlerImpl{
		activityLogService: activityLogService,
		hub:                hub,
	}
}

// List implements ActivityLogHandler.
func (h *ActivityLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := activitylog.ListFilter{
		UserID: queryString(r, "user_id"),
		Action: queryString(r, "action"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 50),
	}

	resp, err := h.activityLogService.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list activity logs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Stream pushes new activity entries to the admin console over SSE. A
// heartbeat comment keeps intermediaries from closing the idle connection.
func (h *ActivityLogHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	events, cleanup := h.hub.Subscribe(activitylogService.StreamTopic)
	defer cleanup()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Warn("failed to encode stream event", "event", event.Name, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()
		}
	}
}
