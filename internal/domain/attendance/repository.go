package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance events.
// Day-level invariants (one clock-in, one clock-out per employee per day)
// are enforced by the service through the Has* queries.
type AttendanceRepository interface {
	// Create inserts a new clock-in event
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// HasClockInBetween reports whether a clock-in exists in [start, end]
	HasClockInBetween(ctx context.Context, nationalID string, start, end time.Time) (bool, error)

	// HasClockOutBetween reports whether a closed event exists in [start, end]
	HasClockOutBetween(ctx context.Context, nationalID string, start, end time.Time) (bool, error)

	// GetOpenEventBetween retrieves the latest event without a clock-out
	// in [start, end], or ErrNoPendingClockIn
	GetOpenEventBetween(ctx context.Context, nationalID string, start, end time.Time) (Attendance, error)

	// CloseEvent records the clock-out timestamp on an open event
	CloseEvent(ctx context.Context, id string, clockOut time.Time) (Attendance, error)
}
