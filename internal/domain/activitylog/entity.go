package activitylog

import "time"

const (
	ActionCheckIn         = "attendance.check_in"
	ActionCheckOut        = "attendance.check_out"
	ActionAutoCheckOut    = "attendance.auto_check_out"
	ActionAdminEdit       = "attendance.admin_edit"
	ActionLeaveRequested  = "leave.requested"
	ActionLeaveApproved   = "leave.approved"
	ActionLeaveRejected   = "leave.rejected"
	ActionLeaveCancelled  = "leave.cancelled"
	ActionSettingsUpdated = "settings.updated"
	ActionShiftUpdated    = "settings.shift_updated"
	ActionLogin           = "auth.login"
)

// Entry is an append-only audit record. Entries are never updated or
// deleted by the application.
type Entry struct {
	ID        string
	UserID    *string
	Action    string
	Detail    *string
	CreatedAt time.Time

	// Joined from users for the admin listing.
	UserName *string
}

type ListFilter struct {
	UserID *string
	Action *string
	Page   int
	Limit  int
}

type EntryResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
	Action    string  `json:"action"`
	Detail    *string `json:"detail,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		UserName:  e.UserName,
		Action:    e.Action,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Entries    []EntryResponse `json:"entries"`
}
