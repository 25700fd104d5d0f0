package dashboard

import "context"

type DashboardService interface {
	AdminSummary(ctx context.Context) (AdminSummaryResponse, error)
	EmployeeSummary(ctx context.Context, userID string) (EmployeeSummaryResponse, error)
}
