package report

import (
	"strings"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SiteFilterAll selects every site. The Spanish form value is accepted as
// an alias since the legacy front end sends it.
const (
	SiteFilterAll       = "ALL"
	SiteFilterAllLegacy = "TODAS"
)

type PayrollReportRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Site          string `json:"site"`
	EmployeeQuery string `json:"employee_query"`
}

func (r *PayrollReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if r.StartDate != "" && r.EndDate != "" {
		start, okStart := validator.IsValidDate(r.StartDate)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		end, okEnd := validator.IsValidDate(r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		if okStart && okEnd && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if !r.AllSites() && !validator.IsInSliceFold(r.Site, employee.Sites()) {
		errs = append(errs, validator.ValidationError{
			Field:   "site",
			Message: "site must be one of the registered work sites",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AllSites reports whether the request asks for every site.
func (r *PayrollReportRequest) AllSites() bool {
	site := strings.TrimSpace(r.Site)
	return site == "" ||
		strings.EqualFold(site, SiteFilterAll) ||
		strings.EqualFold(site, SiteFilterAllLegacy)
}

// Range returns the inclusive [start, end] of the report, with end
// extended to the last instant of its day so timestamp comparisons in
// the stores behave as an inclusive date range.
func (r *PayrollReportRequest) Range() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// AttendanceRow is one attendance event joined to its employee, as the
// store returns it. Employee is nil when the directory join found no
// matching record (an orphan row).
type AttendanceRow struct {
	ID            string
	ClockIn       time.Time
	RestDayWorked *bool
	Employee      *employee.Employee
}

// EmployeeSummary is the per-employee pay summary for one report run.
// It exists only for the duration of a report invocation.
type EmployeeSummary struct {
	NationalID        string          `json:"national_id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Site              string          `json:"site"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	BankAccountType   string          `json:"bank_account_type"`
	EffectiveDays     int             `json:"effective_days"`
	LateDates         []string        `json:"late_dates"`
	RestDayWorked     bool            `json:"rest_day_worked"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	HalfPeriodRate    decimal.Decimal `json:"half_period_rate"`
	GrossPay          decimal.Decimal `json:"gross_pay"`
	DiscountTotal     decimal.Decimal `json:"discount_total"`
	NetPay            decimal.Decimal `json:"net_pay"`
}

// PayrollReport is the aggregate output of one report invocation.
type PayrollReport struct {
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	GeneratedAt     string            `json:"generated_at"`
	Summaries       []EmployeeSummary `json:"summaries"`
	TotalPayroll    decimal.Decimal   `json:"total_payroll"`
	TotalDaysWorked int               `json:"total_days_worked"`

	// Data-quality counters: events dropped because the directory join
	// failed or the employee record is missing site or rate. Counted
	// and logged, never silently discarded.
	SkippedOrphanEvents  int `json:"skipped_orphan_events"`
	SkippedInvalidEvents int `json:"skipped_invalid_events"`
}
