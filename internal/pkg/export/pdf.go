package export

import (
	"bytes"
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
	"github.com/go-pdf/fpdf"
)

// MonthlyAttendancePDF renders the monthly report as a landscape A4 table.
func MonthlyAttendancePDF(rep report.MonthlyAttendanceReport) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Attendance Report %02d/%d", rep.PeriodMonth, rep.PeriodYear), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period %s to %s, generated %s", rep.PeriodStart, rep.PeriodEnd, rep.GeneratedAt), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Employee", "Department", "Work Days", "Hours", "Present", "Late", "Leave", "Absent", "Late Min"}
	widths := []float64{60, 45, 22, 22, 22, 22, 22, 22, 22}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(221, 235, 247)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	writeHeader()
	for _, row := range rep.Rows {
		dept := ""
		if row.Department != nil {
			dept = *row.Department
		}
		cells := []string{
			row.EmployeeName,
			dept,
			fmt.Sprintf("%d", row.WorkDays),
			fmt.Sprintf("%.2f", row.TotalHours),
			fmt.Sprintf("%d", row.PresentDays),
			fmt.Sprintf("%d", row.LateDays),
			fmt.Sprintf("%d", row.LeaveDays),
			fmt.Sprintf("%d", row.AbsentDays),
			fmt.Sprintf("%d", row.TotalLateMinutes),
		}
		for i, c := range cells {
			align := "C"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
