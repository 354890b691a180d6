package attendance

import (
	"time"
)

type Attendance struct {
	ID            string
	NationalID    string
	ClockIn       time.Time
	ClockOut      *time.Time
	RestDayWorked *bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
