package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type reportRepository struct {
	db *database.DB
}

// AttendanceRange implements report.ReportRepository.
// The employee side of the join is nullable on purpose: an attendance
// event whose national ID no longer resolves must surface as an orphan
// row so the engine can count it, not disappear inside an INNER JOIN.
func (r *reportRepository) AttendanceRange(ctx context.Context, start, end time.Time) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.clock_in, a.rest_day_worked,
			e.national_id, e.first_name, e.last_name, e.position, e.site, e.hire_date,
			e.bank_name, e.bank_account_number, e.bank_account_type,
			e.daily_salary, e.monthly_salary
		FROM attendances a
		LEFT JOIN employees e ON e.national_id = a.national_id
		WHERE a.clock_in >= $1
		  AND a.clock_in <= $2
		ORDER BY a.clock_in
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var (
			row               report.AttendanceRow
			nationalID        *string
			firstName         *string
			lastName          *string
			position          *string
			site              *string
			hireDate          *time.Time
			bankName          *string
			bankAccountNumber *string
			bankAccountType   *string
			dailySalary       *decimal.Decimal
			monthlySalary     *decimal.Decimal
		)

		err := rows.Scan(
			&row.ID, &row.ClockIn, &row.RestDayWorked,
			&nationalID, &firstName, &lastName, &position, &site, &hireDate,
			&bankName, &bankAccountNumber, &bankAccountType,
			&dailySalary, &monthlySalary,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}

		if nationalID != nil {
			emp := employee.Employee{
				NationalID: *nationalID,
			}
			if firstName != nil {
				emp.FirstName = *firstName
			}
			if lastName != nil {
				emp.LastName = *lastName
			}
			if position != nil {
				emp.Position = employee.Position(*position)
			}
			if site != nil {
				emp.Site = *site
			}
			if hireDate != nil {
				emp.HireDate = *hireDate
			}
			if bankName != nil {
				emp.BankName = *bankName
			}
			if bankAccountNumber != nil {
				emp.BankAccountNumber = *bankAccountNumber
			}
			if bankAccountType != nil {
				emp.BankAccountType = *bankAccountType
			}
			if dailySalary != nil {
				emp.DailySalary = *dailySalary
			}
			if monthlySalary != nil {
				emp.MonthlySalary = *monthlySalary
			}
			row.Employee = &emp
		}

		result = append(result, row)
	}

	// A connection fault mid-stream ends Next() without an error from
	// Scan; surfacing it here is what keeps a truncated attendance set
	// from being paid out as if it were complete.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance range: %w", err)
	}

	return result, nil
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
