package dashboard

import (
	"context"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/dashboard"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/utils"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	location       *time.Location
}

func NewDashboardService(repo dashboard.DashboardRepository, attendanceRepo attendance.AttendanceRepository, location *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		attendanceRepo:      attendanceRepo,
		location:            location,
	}
}

// AdminSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AdminSummary(ctx context.Context) (dashboard.AdminSummaryResponse, error) {
	nowLocal := time.Now().In(s.location)
	today := utils.WorkDate(nowLocal)

	totalEmployees, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.AdminSummaryResponse{}, err
	}

	todayCounts, err := s.DashboardRepository.CountsByDate(ctx, today)
	if err != nil {
		return dashboard.AdminSummaryResponse{}, err
	}

	// Trailing seven days, today included.
	trendCounts, err := s.DashboardRepository.CountsByRange(ctx, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	if err != nil {
		return dashboard.AdminSummaryResponse{}, err
	}

	trend := make([]dashboard.DailyTrendItem, 0, len(trendCounts))
	for _, c := range trendCounts {
		trend = append(trend, dashboard.DailyTrendItem{
			Date:    c.Date.Format("2006-01-02"),
			Present: c.Present,
			Late:    c.Late,
			OnLeave: c.OnLeave,
		})
	}

	notCheckedIn := totalEmployees - todayCounts.Present - todayCounts.OnLeave
	if notCheckedIn < 0 {
		notCheckedIn = 0
	}

	return dashboard.AdminSummaryResponse{
		Date:           today.Format("2006-01-02"),
		TotalEmployees: totalEmployees,
		Present:        todayCounts.Present,
		Late:           todayCounts.Late,
		OnLeave:        todayCounts.OnLeave,
		Absent:         notCheckedIn,
		NotCheckedIn:   notCheckedIn,
		WeeklyTrend:    trend,
	}, nil
}

// EmployeeSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeSummary(ctx context.Context, userID string) (dashboard.EmployeeSummaryResponse, error) {
	nowLocal := time.Now().In(s.location)
	monthStart := time.Date(nowLocal.Year(), nowLocal.Month(), 1, 0, 0, 0, 0, s.location)
	monthEnd := monthStart.AddDate(0, 1, 0)

	workDays, totalHours, lateDays, leaveDays, lateMinutes, err :=
		s.DashboardRepository.EmployeeMonthAggregates(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}

	recent, _, err := s.attendanceRepo.ListByUser(ctx, userID, attendance.HistoryFilter{Page: 1, Limit: 7})
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}

	records := make([]dashboard.RecentEntry, 0, len(recent))
	for _, att := range recent {
		entry := dashboard.RecentEntry{
			Date:       att.WorkDate.Format("2006-01-02"),
			TotalHours: att.TotalHours,
			Status:     string(att.Status),
		}
		if att.CheckIn != nil {
			formatted := att.CheckIn.In(s.location).Format("15:04")
			entry.CheckIn = &formatted
		}
		if att.CheckOut != nil {
			formatted := att.CheckOut.In(s.location).Format("15:04")
			entry.CheckOut = &formatted
		}
		records = append(records, entry)
	}

	return dashboard.EmployeeSummaryResponse{
		Month:            monthStart.Format("2006-01"),
		WorkDays:         workDays,
		TotalHours:       totalHours,
		LateDays:         lateDays,
		LeaveDays:        leaveDays,
		TotalLateMinutes: lateMinutes,
		RecentRecords:    records,
	}, nil
}
