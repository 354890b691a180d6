package report

import (
	"context"
	"time"
)

// ReportRepository defines the read side of the payroll report: the raw
// attendance stream joined to the employee directory.
type ReportRepository interface {
	// AttendanceRange retrieves every attendance event whose clock-in
	// falls in [start, end], left-joined to the employee directory so
	// orphan rows surface with a nil Employee instead of vanishing.
	AttendanceRange(ctx context.Context, start, end time.Time) ([]AttendanceRow, error)
}
