package employee

import (
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterEmployeeRequest struct {
	NationalID        string `json:"national_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Position          string `json:"position"`
	Site              string `json:"site"`
	HireDate          string `json:"hire_date"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountType   string `json:"bank_account_type"`
	DailySalary       string `json:"daily_salary"`
	MonthlySalary     string `json:"monthly_salary"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"national_id":         r.NationalID,
		"first_name":          r.FirstName,
		"last_name":           r.LastName,
		"hire_date":           r.HireDate,
		"bank_name":           r.BankName,
		"bank_account_number": r.BankAccountNumber,
		"bank_account_type":   r.BankAccountType,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if !validator.IsEmpty(r.NationalID) && !validator.IsNumeric(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must contain digits only",
		})
	}

	if !validator.IsInSlice(r.Position, Positions()) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the registered positions",
		})
	}

	if !validator.IsInSlice(r.Site, Sites()) {
		errs = append(errs, validator.ValidationError{
			Field:   "site",
			Message: "site must be one of the registered work sites",
		})
	}

	if !validator.IsEmpty(r.HireDate) {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	daily, errDaily := parseRate(r.DailySalary)
	if errDaily != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_salary",
			Message: "daily_salary must be a number",
		})
	}
	monthly, errMonthly := parseRate(r.MonthlySalary)
	if errMonthly != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be a number",
		})
	}

	// Exactly one of the two rates must be set. Both or neither is the
	// ambiguity the report engine is allowed to assume never happens.
	if errDaily == nil && errMonthly == nil {
		bothSet := daily.IsPositive() && monthly.IsPositive()
		noneSet := !daily.IsPositive() && !monthly.IsPositive()
		if bothSet || noneSet {
			errs = append(errs, validator.ValidationError{
				Field:   "daily_salary",
				Message: ErrAmbiguousSalary.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// parseRate parses a salary field, treating a blank value as zero so
// the unused rate can simply be omitted.
func parseRate(s string) (decimal.Decimal, error) {
	if validator.IsEmpty(s) {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

type EmployeeResponse struct {
	NationalID        string          `json:"national_id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Position          string          `json:"position"`
	Site              string          `json:"site"`
	HireDate          string          `json:"hire_date"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	BankAccountType   string          `json:"bank_account_type"`
	DailySalary       decimal.Decimal `json:"daily_salary"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
}
