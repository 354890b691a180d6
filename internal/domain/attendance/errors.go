package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("a clock-in has already been recorded today")
	ErrAlreadyClockedOut  = errors.New("a clock-out has already been recorded today")
	ErrNoPendingClockIn   = errors.New("no pending clock-in found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
