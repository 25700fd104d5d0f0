package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	ExportMonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyAttendanceReportRequest {
	now := time.Now()
	req := report.MonthlyAttendanceReportRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Month = parsed
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Year = parsed
		}
	}
	return req
}

// MonthlyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.MonthlyAttendance(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		slog.Error("failed to build monthly attendance report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ExportMonthlyAttendance implements ReportHandler. The rendered file is
// streamed as an attachment; the format path segment is "excel" or "pdf".
func (h *ReportHandlerImpl) ExportMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	format := report.ExportFormat(chi.URLParam(r, "format"))
	if format != report.FormatExcel && format != report.FormatPDF {
		response.BadRequest(w, "format must be excel or pdf", nil)
		return
	}

	data, filename, err := h.reportService.ExportMonthlyAttendance(r.Context(), monthlyRequestFromQuery(r), format)
	if err != nil {
		slog.Error("failed to export monthly attendance report", "format", format, "error", err)
		response.HandleError(w, err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == report.FormatPDF {
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
