package discount

import (
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterDiscountRequest struct {
	NationalID string `json:"national_id"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
}

func (r *RegisterDiscountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	}

	if !validator.IsInSlice(r.Category, Categories()) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: ErrInvalidCategory.Error(),
		})
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a number",
		})
	} else if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: ErrInvalidAmount.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DiscountResponse struct {
	ID         string          `json:"id"`
	NationalID string          `json:"national_id"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}

type ListDiscountResponse struct {
	Data  []DiscountResponse `json:"data"`
	Total decimal.Decimal    `json:"total"`
}

// EmployeeDiscountFilter selects one employee's discount line items for
// the drill-down view.
type EmployeeDiscountFilter struct {
	NationalID string
	StartDate  string
	EndDate    string
}

func (f *EmployeeDiscountFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	}
	if validator.IsEmpty(f.StartDate) || validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date are required",
		})
	} else {
		start, okStart := validator.IsValidDate(f.StartDate)
		end, okEnd := validator.IsValidDate(f.EndDate)
		if !okStart || !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "dates must be in YYYY-MM-DD format",
			})
		} else if start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
