package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyAttendanceReportRequestValidate(t *testing.T) {
	thisYear := time.Now().Year()

	valid := []MonthlyAttendanceReportRequest{
		{Month: 1, Year: 2024},
		{Month: 12, Year: thisYear},
		{Month: 6, Year: thisYear + 1},
	}
	for _, req := range valid {
		assert.NoError(t, req.Validate(), "expected %+v to be valid", req)
	}

	invalid := []MonthlyAttendanceReportRequest{
		{Month: 0, Year: 2024},
		{Month: 13, Year: 2024},
		{Month: 3, Year: 1999},
		{Month: 3, Year: thisYear + 2},
	}
	for _, req := range invalid {
		assert.Error(t, req.Validate(), "expected %+v to be invalid", req)
	}
}
