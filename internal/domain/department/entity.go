package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeCount int64
}
