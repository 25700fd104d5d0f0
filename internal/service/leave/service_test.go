package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
)

// fakeAttendanceRepo keeps records in memory keyed by work date.
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	created []attendance.Attendance
	updated []attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(userID string, workDate time.Time) string {
	return userID + "|" + workDate.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) seed(userID string, workDate time.Time, att attendance.Attendance) {
	att.UserID = userID
	att.WorkDate = workDate
	f.records[f.key(userID, workDate)] = &att
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, att)
	f.records[f.key(att.UserID, att.WorkDate)] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	if att, ok := f.records[f.key(userID, workDate)]; ok {
		copied := *att
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDateForUpdate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	return f.GetByUserAndDate(ctx, userID, workDate)
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.updated = append(f.updated, att)
	f.records[f.key(att.UserID, att.WorkDate)] = &att
	return nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AdminFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListOpenForAutoCheckout(ctx context.Context, workDate time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func TestMaterializeLeaveDays(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	day := func(d int) time.Time {
		return time.Date(2025, 5, d, 0, 0, 0, 0, loc)
	}
	typeName := "Nghỉ phép năm"
	request := leave.LeaveRequest{
		ID:            "req-1",
		UserID:        "user-1",
		StartDate:     day(5),
		EndDate:       day(7),
		Status:        leave.StatusApproved,
		LeaveTypeName: &typeName,
	}

	t.Run("creates a row per day when none exist", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := &LeaveServiceImpl{attendanceRepo: repo, location: loc}

		require.NoError(t, svc.materializeLeaveDays(context.Background(), request))

		assert.Len(t, repo.created, 3)
		for i, created := range repo.created {
			assert.Equal(t, "user-1", created.UserID)
			assert.Equal(t, day(5+i), created.WorkDate)
			assert.Equal(t, attendance.StatusOnLeave, created.Status)
			assert.Nil(t, created.CheckIn)
			require.NotNil(t, created.Note)
			assert.Equal(t, "On leave: Nghỉ phép năm", *created.Note)
		}
	})

	t.Run("skips days the employee checked in on", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		checkIn := time.Date(2025, 5, 6, 8, 5, 0, 0, loc)
		repo.seed("user-1", day(6), attendance.Attendance{
			CheckIn: &checkIn,
			Status:  attendance.StatusPresent,
		})
		svc := &LeaveServiceImpl{attendanceRepo: repo, location: loc}

		require.NoError(t, svc.materializeLeaveDays(context.Background(), request))

		assert.Len(t, repo.created, 2)
		assert.Empty(t, repo.updated)
		kept, err := repo.GetByUserAndDate(context.Background(), "user-1", day(6))
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, kept.Status)
	})

	t.Run("overwrites rows without a check-in", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.seed("user-1", day(5), attendance.Attendance{
			Status: attendance.StatusAbsent,
		})
		svc := &LeaveServiceImpl{attendanceRepo: repo, location: loc}

		require.NoError(t, svc.materializeLeaveDays(context.Background(), request))

		assert.Len(t, repo.created, 2)
		require.Len(t, repo.updated, 1)
		assert.Equal(t, attendance.StatusOnLeave, repo.updated[0].Status)
		assert.Equal(t, day(5), repo.updated[0].WorkDate)
	})

	t.Run("single-day request", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		single := request
		single.StartDate = day(10)
		single.EndDate = day(10)
		svc := &LeaveServiceImpl{attendanceRepo: repo, location: loc}

		require.NoError(t, svc.materializeLeaveDays(context.Background(), single))

		assert.Len(t, repo.created, 1)
	})
}
