package dashboard

// AdminSummaryResponse is the company-wide snapshot for one work date.
type AdminSummaryResponse struct {
	Date           string           `json:"date"`
	TotalEmployees int              `json:"total_employees"`
	Present        int              `json:"present"`
	Late           int              `json:"late"`
	OnLeave        int              `json:"on_leave"`
	Absent         int              `json:"absent"`
	NotCheckedIn   int              `json:"not_checked_in"`
	WeeklyTrend    []DailyTrendItem `json:"weekly_trend"`
}

// DailyTrendItem is one day of the trailing seven-day presence trend.
type DailyTrendItem struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	OnLeave int    `json:"on_leave"`
}

// EmployeeSummaryResponse is one employee's view of the current month.
type EmployeeSummaryResponse struct {
	Month            string        `json:"month"`
	WorkDays         int           `json:"work_days"`
	TotalHours       float64       `json:"total_hours"`
	LateDays         int           `json:"late_days"`
	LeaveDays        int           `json:"leave_days"`
	TotalLateMinutes int           `json:"total_late_minutes"`
	RecentRecords    []RecentEntry `json:"recent_records"`
}

// RecentEntry is a compact attendance row for the employee dashboard.
type RecentEntry struct {
	Date       string   `json:"date"`
	CheckIn    *string  `json:"check_in,omitempty"`
	CheckOut   *string  `json:"check_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	Status     string   `json:"status"`
}
