package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/attendance"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (id, national_id, clock_in, rest_day_worked)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.NationalID,
		att.ClockIn,
		att.RestDayWorked,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// HasClockInBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasClockInBetween(ctx context.Context, nationalID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendances
			WHERE national_id = $1
			  AND clock_in >= $2
			  AND clock_in <= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, nationalID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check clock-in: %w", err)
	}

	return exists, nil
}

// HasClockOutBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasClockOutBetween(ctx context.Context, nationalID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendances
			WHERE national_id = $1
			  AND clock_in >= $2
			  AND clock_in <= $3
			  AND clock_out IS NOT NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, nationalID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check clock-out: %w", err)
	}

	return exists, nil
}

// GetOpenEventBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenEventBetween(ctx context.Context, nationalID string, start, end time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, national_id, clock_in, clock_out, rest_day_worked, created_at, updated_at
		FROM attendances
		WHERE national_id = $1
		  AND clock_in >= $2
		  AND clock_in <= $3
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, nationalID, start, end).Scan(
		&att.ID, &att.NationalID, &att.ClockIn, &att.ClockOut, &att.RestDayWorked,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoPendingClockIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance event: %w", err)
	}

	return att, nil
}

// CloseEvent implements attendance.AttendanceRepository.
func (r *attendanceRepository) CloseEvent(ctx context.Context, id string, clockOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, national_id, clock_in, clock_out, rest_day_worked, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, clockOut, id).Scan(
		&att.ID, &att.NationalID, &att.ClockIn, &att.ClockOut, &att.RestDayWorked,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance event: %w", err)
	}

	return att, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
