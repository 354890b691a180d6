package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/attendance"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps events in memory so day-window logic can be
// exercised without a database.
type fakeAttendanceRepo struct {
	events []attendance.Attendance
	nextID int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	att.ID = "evt-" + strconv.Itoa(f.nextID)
	f.events = append(f.events, att)
	return att, nil
}

func (f *fakeAttendanceRepo) HasClockInBetween(_ context.Context, nationalID string, start, end time.Time) (bool, error) {
	for _, e := range f.events {
		if e.NationalID == nationalID && !e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) HasClockOutBetween(_ context.Context, nationalID string, start, end time.Time) (bool, error) {
	for _, e := range f.events {
		if e.NationalID == nationalID && e.ClockOut != nil &&
			!e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) GetOpenEventBetween(_ context.Context, nationalID string, start, end time.Time) (attendance.Attendance, error) {
	for i := len(f.events) - 1; i >= 0; i-- {
		e := f.events[i]
		if e.NationalID == nationalID && e.ClockOut == nil &&
			!e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			return e, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoPendingClockIn
}

func (f *fakeAttendanceRepo) CloseEvent(_ context.Context, id string, clockOut time.Time) (attendance.Attendance, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events[i].ClockOut = &clockOut
			return f.events[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepo struct {
	known map[string]bool
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.known[emp.NationalID] = true
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByNationalID(_ context.Context, nationalID string) (employee.Employee, error) {
	if !f.known[nationalID] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{NationalID: nationalID}, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Exists(_ context.Context, nationalID string) (bool, error) {
	return f.known[nationalID], nil
}

func newTestService(now time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{known: map[string]bool{"1045678901": true}}
	svc := NewAttendanceService(attRepo, empRepo, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, attRepo
}

func TestClockIn_RecordsEvent(t *testing.T) {
	now := time.Date(2025, time.March, 4, 7, 58, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{NationalID: "1045678901"})
	require.NoError(t, err)
	assert.Equal(t, "1045678901", resp.NationalID)
	assert.Len(t, repo.events, 1)
	assert.Nil(t, resp.ClockOut)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{NationalID: "999999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockIn_DuplicateSameDay(t *testing.T) {
	now := time.Date(2025, time.March, 4, 7, 58, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	req := attendance.ClockInRequest{NationalID: "1045678901"}

	_, err := svc.ClockIn(context.Background(), req)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(5 * time.Hour) }
	_, err = svc.ClockIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_NextDayAllowed(t *testing.T) {
	now := time.Date(2025, time.March, 4, 7, 58, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	req := attendance.ClockInRequest{NationalID: "1045678901"}

	_, err := svc.ClockIn(context.Background(), req)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(24 * time.Hour) }
	_, err = svc.ClockIn(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.events, 2)
}

func TestClockOut_ClosesOpenEvent(t *testing.T) {
	now := time.Date(2025, time.March, 4, 7, 58, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{NationalID: "1045678901"})
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(9 * time.Hour) }
	resp, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{NationalID: "1045678901"})
	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.March, 4, 17, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{NationalID: "1045678901"})
	assert.ErrorIs(t, err, attendance.ErrNoPendingClockIn)
}

func TestClockOut_Duplicate(t *testing.T) {
	now := time.Date(2025, time.March, 4, 7, 58, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{NationalID: "1045678901"})
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(9 * time.Hour) }
	_, err = svc.ClockOut(context.Background(), attendance.ClockOutRequest{NationalID: "1045678901"})
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), attendance.ClockOutRequest{NationalID: "1045678901"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockIn_RestDayFlagKept(t *testing.T) {
	now := time.Date(2025, time.March, 9, 8, 30, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	worked := true

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		NationalID:    "1045678901",
		RestDayWorked: &worked,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.events[0].RestDayWorked)
	assert.True(t, *repo.events[0].RestDayWorked)
}
