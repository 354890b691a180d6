package attendance

import "context"

// AttendanceService defines business logic for clock-in/clock-out capture
type AttendanceService interface {
	// ClockIn records a check-in for today, rejecting duplicates
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's pending check-in
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
}
