package fixtures

import (
	"github.com/chamcong-app/attendance-backend-go/internal/domain/department"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/settings"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// DefaultShift is the single administrative shift new installations start
// with. Check-in math runs against whichever shift is active.
func DefaultShift() settings.Shift {
	return settings.Shift{
		Name:                 "Ca hành chính",
		StartTime:            "08:00",
		EndTime:              "17:00",
		LateThresholdMinutes: 15,
		EarlyLeaveMinutes:    15,
		IsActive:             true,
	}
}

// DefaultLeaveTypes covers the leave categories Vietnamese labor law
// distinguishes for payroll.
func DefaultLeaveTypes() []leave.LeaveType {
	return []leave.LeaveType{
		{Name: "Nghỉ phép năm", IsPaid: true, IsActive: true},
		{Name: "Nghỉ ốm", IsPaid: true, IsActive: true},
		{Name: "Nghỉ không lương", IsPaid: false, IsActive: true},
		{Name: "Nghỉ việc riêng", IsPaid: true, IsActive: true},
	}
}

func DefaultDepartments() []department.Department {
	return []department.Department{
		{Name: "Ban Giám đốc"},
		{Name: "Hành chính - Nhân sự"},
		{Name: "Kinh doanh"},
		{Name: "Kỹ thuật"},
	}
}

// DefaultSettings fills the singleton configuration row. Geofencing stays
// disabled until an admin sets the office coordinates.
func DefaultSettings(companyName string) settings.UpdateSettingsRequest {
	return settings.UpdateSettingsRequest{
		CompanyName:       &companyName,
		MaxDistanceMeters: intPtr(100),
	}
}

// AdminSeed is the bootstrap admin account. The caller supplies the hashed
// password.
func AdminSeed(email string, passwordHash string) user.User {
	return user.User{
		Email:        email,
		PasswordHash: &passwordHash,
		FullName:     "Quản trị viên",
		Position:     strPtr("Administrator"),
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
}
