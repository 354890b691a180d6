package response

import (
	"errors"
	"net/http"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/attendance"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrInvalidSite):
		BadRequest(w, "Unknown site", nil)
	case errors.Is(err, employee.ErrInvalidPosition):
		BadRequest(w, "Unknown position", nil)
	case errors.Is(err, employee.ErrAmbiguousSalary):
		BadRequest(w, "Exactly one of daily_salary or monthly_salary must be set", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Employee already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Employee already clocked out today")
	case errors.Is(err, attendance.ErrNoPendingClockIn):
		Conflict(w, "No pending clock-in for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Discount domain errors
	case errors.Is(err, discount.ErrInvalidCategory):
		BadRequest(w, "Unknown discount category", nil)
	case errors.Is(err, discount.ErrInvalidAmount):
		BadRequest(w, "Discount amount must be a positive number", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid report date range", nil)
	case errors.Is(err, report.ErrReportAborted):
		InternalServerError(w, "Payroll report could not be generated")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
