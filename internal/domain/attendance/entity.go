package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusOnLeave:
		return true
	}
	return false
}

// Attendance is one employee's record for one work date. At most one row
// exists per (user_id, work_date); check_out is only ever set after check_in.
type Attendance struct {
	ID               string
	UserID           string
	WorkDate         time.Time
	CheckIn          *time.Time
	CheckOut         *time.Time
	TotalHours       *float64
	LateMinutes      int
	Status           Status
	Latitude         *float64
	Longitude        *float64
	LocationAccuracy *float64
	LocationAddress  *string
	IsAutoCheckout   bool
	Note             *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentName *string
}
