package report

import "context"

type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

type ReportService interface {
	MonthlyAttendance(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)

	// ExportMonthlyAttendance renders the monthly report in the requested
	// format and returns the file bytes with a suggested filename.
	ExportMonthlyAttendance(ctx context.Context, req MonthlyAttendanceReportRequest, format ExportFormat) ([]byte, string, error)
}
