package attendance

import (
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	NationalID    string `json:"national_id"`
	RestDayWorked *bool  `json:"rest_day_worked,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	} else if !validator.IsNumeric(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	NationalID string `json:"national_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	} else if !validator.IsNumeric(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	NationalID    string  `json:"national_id"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out,omitempty"`
	RestDayWorked *bool   `json:"rest_day_worked,omitempty"`
}
