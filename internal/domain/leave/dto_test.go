package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestRequestValidate(t *testing.T) {
	valid := CreateLeaveRequestRequest{
		LeaveTypeID: "type-1",
		StartDate:   "2025-05-05",
		EndDate:     "2025-05-07",
	}
	assert.NoError(t, valid.Validate())

	sameDay := CreateLeaveRequestRequest{
		LeaveTypeID: "type-1",
		StartDate:   "2025-05-05",
		EndDate:     "2025-05-05",
	}
	assert.NoError(t, sameDay.Validate())

	cases := []struct {
		name string
		req  CreateLeaveRequestRequest
	}{
		{"missing leave type", CreateLeaveRequestRequest{StartDate: "2025-05-05", EndDate: "2025-05-07"}},
		{"bad start date", CreateLeaveRequestRequest{LeaveTypeID: "t", StartDate: "05/05/2025", EndDate: "2025-05-07"}},
		{"bad end date", CreateLeaveRequestRequest{LeaveTypeID: "t", StartDate: "2025-05-05", EndDate: "soon"}},
		{"end before start", CreateLeaveRequestRequest{LeaveTypeID: "t", StartDate: "2025-05-07", EndDate: "2025-05-05"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.req.Validate())
		})
	}
}

func TestRejectLeaveRequestRequestValidate(t *testing.T) {
	assert.Error(t, (&RejectLeaveRequestRequest{}).Validate())
	assert.Error(t, (&RejectLeaveRequestRequest{Reason: "   "}).Validate())
	assert.NoError(t, (&RejectLeaveRequestRequest{Reason: "insufficient coverage"}).Validate())
}

func TestLeaveRequestTotalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
	}

	r := LeaveRequest{StartDate: day(5), EndDate: day(5)}
	assert.Equal(t, 1, r.TotalDays())

	r = LeaveRequest{StartDate: day(5), EndDate: day(9)}
	assert.Equal(t, 5, r.TotalDays())
}

func TestToResponseFormatsDates(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	approvedAt := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	r := LeaveRequest{
		ID:         "req-1",
		UserID:     "user-1",
		StartDate:  time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC),
		Status:     StatusApproved,
		ApprovedAt: &approvedAt,
		CreatedAt:  created,
	}

	resp := ToResponse(r)
	assert.Equal(t, "2025-05-05", resp.StartDate)
	assert.Equal(t, "2025-05-07", resp.EndDate)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ApprovedAt)
	assert.Equal(t, "2025-05-02 09:00:00", *resp.ApprovedAt)
}
