package export

import (
	"fmt"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var excelHeaders = []string{
	"Employee", "Department", "Work Days", "Total Hours",
	"Present Days", "Late Days", "Leave Days", "Absent Days", "Late Minutes",
}

// MonthlyAttendanceExcel renders the monthly report as an XLSX workbook.
func MonthlyAttendanceExcel(rep report.MonthlyAttendanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	title := fmt.Sprintf("Attendance Report %02d/%d", rep.PeriodMonth, rep.PeriodYear)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rep.Rows {
		rowIdx := i + 4
		dept := ""
		if row.Department != nil {
			dept = *row.Department
		}
		values := []interface{}{
			row.EmployeeName, dept, row.WorkDays, row.TotalHours,
			row.PresentDays, row.LateDays, row.LeaveDays, row.AbsentDays, row.TotalLateMinutes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
