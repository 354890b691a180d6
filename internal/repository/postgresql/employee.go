package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
)

// unique_violation
const pgUniqueViolation = "23505"

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	national_id, first_name, last_name, position, site, hire_date,
	bank_name, bank_account_number, bank_account_type,
	daily_salary, monthly_salary, created_at, updated_at
`

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			national_id, first_name, last_name, position, site, hire_date,
			bank_name, bank_account_number, bank_account_type,
			daily_salary, monthly_salary
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.NationalID,
		emp.FirstName,
		emp.LastName,
		emp.Position,
		emp.Site,
		emp.HireDate,
		emp.BankName,
		emp.BankAccountNumber,
		emp.BankAccountType,
		emp.DailySalary,
		emp.MonthlySalary,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return employee.Employee{}, employee.ErrNationalIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByNationalID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByNationalID(ctx context.Context, nationalID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE national_id = $1`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, nationalID).Scan(
		&emp.NationalID, &emp.FirstName, &emp.LastName, &emp.Position, &emp.Site, &emp.HireDate,
		&emp.BankName, &emp.BankAccountNumber, &emp.BankAccountType,
		&emp.DailySalary, &emp.MonthlySalary, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.NationalID, &emp.FirstName, &emp.LastName, &emp.Position, &emp.Site, &emp.HireDate,
			&emp.BankName, &emp.BankAccountNumber, &emp.BankAccountType,
			&emp.DailySalary, &emp.MonthlySalary, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// Exists implements employee.EmployeeRepository.
func (r *employeeRepository) Exists(ctx context.Context, nationalID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE national_id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, nationalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
