package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/report"
)

func strPtr(s string) *string { return &s }

func sampleReport() report.MonthlyAttendanceReport {
	return report.MonthlyAttendanceReport{
		PeriodMonth: 3,
		PeriodYear:  2025,
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-31",
		GeneratedAt: "2025-04-01 08:00:00",
		Rows: []report.MonthlyAttendanceRow{
			{
				UserID:           "user-1",
				EmployeeName:     "Nguyen Van A",
				Department:       strPtr("Kỹ thuật"),
				WorkDays:         21,
				TotalHours:       168.5,
				PresentDays:      19,
				LateDays:         2,
				LeaveDays:        1,
				AbsentDays:       0,
				TotalLateMinutes: 47,
			},
			{
				UserID:       "user-2",
				EmployeeName: "Tran Thi B",
				WorkDays:     20,
				TotalHours:   160,
				PresentDays:  20,
			},
		},
	}
}

func TestMonthlyAttendanceExcel(t *testing.T) {
	data, err := MonthlyAttendanceExcel(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance Report 03/2025", title)

	header, err := f.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	name, err := f.GetCellValue("Sheet1", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", name)

	dept, err := f.GetCellValue("Sheet1", "B5")
	require.NoError(t, err)
	assert.Empty(t, dept)
}

func TestMonthlyAttendancePDF(t *testing.T) {
	data, err := MonthlyAttendancePDF(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output should start with the PDF magic bytes")
	assert.Contains(t, string(data[len(data)-32:]), "%%EOF")
}

func TestMonthlyAttendanceExcelEmptyReport(t *testing.T) {
	rep := sampleReport()
	rep.Rows = nil

	data, err := MonthlyAttendanceExcel(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Sheet1", "A4")
	require.NoError(t, err)
	assert.Empty(t, value)
}
