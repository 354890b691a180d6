package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/attendance"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	location       *time.Location

	// now is swappable so the day-window logic is testable.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		location:       location,
		now:            time.Now,
	}
}

// dayBounds returns the first and last instant of t's calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.NationalID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	now := s.now().In(s.location)
	dayStart, dayEnd := dayBounds(now)

	hasClockIn, err := s.attendanceRepo.HasClockInBetween(ctx, req.NationalID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's clock-in: %w", err)
	}
	if hasClockIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		NationalID:    req.NationalID,
		ClockIn:       now,
		RestDayWorked: req.RestDayWorked,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now().In(s.location)
	dayStart, dayEnd := dayBounds(now)

	hasClockOut, err := s.attendanceRepo.HasClockOutBetween(ctx, req.NationalID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's clock-out: %w", err)
	}
	if hasClockOut {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	open, err := s.attendanceRepo.GetOpenEventBetween(ctx, req.NationalID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	closed, err := s.attendanceRepo.CloseEvent(ctx, open.ID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(closed), nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		NationalID:    att.NationalID,
		ClockIn:       att.ClockIn.Format(time.RFC3339),
		RestDayWorked: att.RestDayWorked,
	}
	if att.ClockOut != nil {
		clockOut := att.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}
