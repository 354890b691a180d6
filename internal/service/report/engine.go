package report

import (
	"sort"
	"strings"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// accumulator is the per-employee running state built from the filtered
// attendance stream before any money is computed.
type accumulator struct {
	emp employee.Employee

	// datesWorked maps each distinct calendar date to its day-of-month.
	// Keeping full dates means a range spanning a month boundary never
	// merges, say, Jan 3 and Feb 3 into one worked day.
	datesWorked   map[string]int
	lateDates     []string
	restDayWorked bool
}

// BuildPayrollReport turns the raw attendance and discount streams for a
// date range into a per-employee pay summary. It is a pure function: it
// reads nothing but its arguments and keeps no state across invocations.
func BuildPayrollReport(
	rows []report.AttendanceRow,
	discounts []discount.Discount,
	req report.PayrollReportRequest,
	policies map[string]report.SitePolicy,
) report.PayrollReport {
	rep := report.PayrollReport{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalPayroll:    decimal.Zero,
		TotalDaysWorked: 0,
	}

	discountTotals := make(map[string]decimal.Decimal)
	for _, d := range discounts {
		discountTotals[d.NationalID] = discountTotals[d.NationalID].Add(d.Amount)
	}

	accumulators := accumulate(rows, req, policies, &rep)

	ids := make([]string, 0, len(accumulators))
	for id := range accumulators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		acc := accumulators[id]
		summary := computePay(acc, report.PolicyFor(policies, acc.emp.Site))

		total, ok := discountTotals[id]
		if !ok {
			total = decimal.Zero
		}
		summary.DiscountTotal = total
		summary.NetPay = summary.GrossPay.Round(0).Sub(total)

		rep.TotalPayroll = rep.TotalPayroll.Add(summary.NetPay)
		rep.TotalDaysWorked += summary.EffectiveDays
		rep.Summaries = append(rep.Summaries, summary)
	}

	return rep
}

// accumulate folds the attendance stream into one accumulator per
// employee, applying the site/name filters and the data-fault skips.
func accumulate(
	rows []report.AttendanceRow,
	req report.PayrollReportRequest,
	policies map[string]report.SitePolicy,
	rep *report.PayrollReport,
) map[string]*accumulator {
	accumulators := make(map[string]*accumulator)
	query := strings.ToLower(strings.TrimSpace(req.EmployeeQuery))

	for _, row := range rows {
		if row.Employee == nil {
			rep.SkippedOrphanEvents++
			continue
		}
		emp := *row.Employee

		if strings.TrimSpace(emp.Site) == "" || !emp.HasRate() {
			rep.SkippedInvalidEvents++
			continue
		}

		if !req.AllSites() && !strings.EqualFold(emp.Site, req.Site) {
			continue
		}
		if query != "" && !matchesEmployee(emp, query) {
			continue
		}

		acc, ok := accumulators[emp.NationalID]
		if !ok {
			acc = &accumulator{emp: emp, datesWorked: make(map[string]int)}
			accumulators[emp.NationalID] = acc
		}

		policy := report.PolicyFor(policies, emp.Site)

		// Late detection runs before the 31st-day exclusion: a late
		// arrival on the 31st is still a late arrival, even when the
		// day earns no pay slot. Sundays are never late.
		if policy.GraceCutoff != nil &&
			row.ClockIn.Weekday() != time.Sunday &&
			policy.GraceCutoff.Exceeded(row.ClockIn) {
			acc.lateDates = append(acc.lateDates, row.ClockIn.Format(dateLayout))
		}

		day := row.ClockIn.Day()
		if policy.SplitPeriod && day > policy.PeriodLength {
			// Field pay periods are 30-day months; a 31st has no slot.
			continue
		}
		acc.datesWorked[row.ClockIn.Format(dateLayout)] = day

		if row.RestDayWorked != nil && *row.RestDayWorked {
			acc.restDayWorked = true
		}
	}

	return accumulators
}

func matchesEmployee(emp employee.Employee, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(emp.FirstName), loweredQuery) ||
		strings.Contains(strings.ToLower(emp.LastName), loweredQuery) ||
		strings.Contains(strings.ToLower(emp.NationalID), loweredQuery)
}

// computePay converts an accumulated summary into money under the
// employee's site policy. Discount netting happens in the caller.
func computePay(acc *accumulator, policy report.SitePolicy) report.EmployeeSummary {
	emp := acc.emp

	summary := report.EmployeeSummary{
		NationalID:        emp.NationalID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Site:              emp.Site,
		BankName:          emp.BankName,
		BankAccountNumber: emp.BankAccountNumber,
		BankAccountType:   emp.BankAccountType,
		LateDates:         sortedLateDates(acc.lateDates),
		RestDayWorked:     acc.restDayWorked,
		DailyRate:         emp.DailySalary.Round(0),
		HalfPeriodRate:    emp.MonthlySalary.Div(decimal.NewFromInt(2)).Round(0),
	}

	if policy.SplitPeriod {
		computeSplitPeriodPay(acc, policy, &summary)
		return summary
	}

	// Simple sites: days worked times the rounded daily rate, falling
	// back to half the monthly rate for monthly-paid staff.
	dailyRate := emp.DailySalary
	if !dailyRate.IsPositive() {
		dailyRate = emp.MonthlySalary.Div(decimal.NewFromInt(2))
	}

	summary.EffectiveDays = len(acc.datesWorked)
	summary.GrossPay = dailyRate.Round(0).Mul(decimal.NewFromInt(int64(summary.EffectiveDays)))
	return summary
}

// computeSplitPeriodPay pays the two half-periods independently. A half
// with at least FullPeriodThreshold worked days is paid as a full half
// of FullPeriodDays; otherwise it is paid proportionally. Working a
// rest day earns one bonus daily rate per qualifying half.
func computeSplitPeriodPay(acc *accumulator, policy report.SitePolicy, summary *report.EmployeeSummary) {
	var firstHalfDays, secondHalfDays int
	for _, day := range acc.datesWorked {
		if day <= policy.SplitDay {
			firstHalfDays++
		} else {
			secondHalfDays++
		}
	}

	dailyRate := acc.emp.MonthlySalary.Div(decimal.NewFromInt(int64(policy.PeriodLength)))

	effectiveDays := firstHalfDays + secondHalfDays
	gross := decimal.Zero

	for _, days := range []int{firstHalfDays, secondHalfDays} {
		if days >= policy.FullPeriodThreshold {
			gross = gross.Add(dailyRate.Mul(decimal.NewFromInt(int64(policy.FullPeriodDays))))
			if acc.restDayWorked && days <= policy.FullPeriodDays {
				gross = gross.Add(dailyRate)
				effectiveDays++
			}
		} else {
			gross = gross.Add(dailyRate.Mul(decimal.NewFromInt(int64(days))))
		}
	}

	summary.EffectiveDays = effectiveDays
	summary.GrossPay = gross
}

func sortedLateDates(dates []string) []string {
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, len(dates))
	copy(out, dates)
	sort.Strings(out)
	return out
}
