package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/export"
	"github.com/chamcong-app/attendance-backend-go/internal/pkg/storage"
)

type ReportServiceImpl struct {
	report.ReportRepository
	archive  storage.Archive
	location *time.Location
}

// NewReportService builds the report service. archive may be nil, in which
// case exports are not retained on disk.
func NewReportService(repo report.ReportRepository, archive storage.Archive, location *time.Location) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: repo,
		archive:          archive,
		location:         location,
	}
}

// MonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 1, 0)

	rows, err := s.ReportRepository.MonthlyAttendance(ctx, start, end)
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	return report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: time.Now().In(s.location).Format("2006-01-02 15:04:05"),
		Rows:        rows,
	}, nil
}

// ExportMonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceReportRequest, format report.ExportFormat) ([]byte, string, error) {
	rep, err := s.MonthlyAttendance(ctx, req)
	if err != nil {
		return nil, "", err
	}

	base := fmt.Sprintf("attendance-report-%04d-%02d", req.Year, req.Month)

	var data []byte
	var filename string
	switch format {
	case report.FormatExcel:
		data, err = export.MonthlyAttendanceExcel(rep)
		if err != nil {
			return nil, "", fmt.Errorf("failed to render excel report: %w", err)
		}
		filename = base + ".xlsx"
	case report.FormatPDF:
		data, err = export.MonthlyAttendancePDF(rep)
		if err != nil {
			return nil, "", fmt.Errorf("failed to render pdf report: %w", err)
		}
		filename = base + ".pdf"
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", format)
	}

	s.archiveExport(ctx, req, filename, data)

	return data, filename, nil
}

// archiveExport retains a copy of the rendered file. Failures are logged;
// the download still succeeds.
func (s *ReportServiceImpl) archiveExport(ctx context.Context, req report.MonthlyAttendanceReportRequest, filename string, data []byte) {
	if s.archive == nil {
		return
	}

	path := fmt.Sprintf("%04d/%02d/%s", req.Year, req.Month, filename)
	if _, err := s.archive.Save(ctx, path, data); err != nil {
		slog.Warn("failed to archive report export", "path", path, "error", err)
	}
}
