package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.NationalID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check national ID: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrNationalIDExists
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	// Validate already guaranteed exactly one positive rate; a blank
	// field parses to the zero decimal.
	daily, _ := decimal.NewFromString(req.DailySalary)
	monthly, _ := decimal.NewFromString(req.MonthlySalary)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		NationalID:        req.NationalID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Position:          employee.Position(req.Position),
		Site:              req.Site,
		HireDate:          hireDate,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountType:   req.BankAccountType,
		DailySalary:       daily,
		MonthlySalary:     monthly,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, nationalID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: int64(len(employees)),
	}
	for _, emp := range employees {
		result.Data = append(result.Data, toResponse(emp))
	}
	return result, nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		NationalID:        emp.NationalID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Position:          string(emp.Position),
		Site:              emp.Site,
		HireDate:          emp.HireDate.Format("2006-01-02"),
		BankName:          emp.BankName,
		BankAccountNumber: emp.BankAccountNumber,
		BankAccountType:   emp.BankAccountType,
		DailySalary:       emp.DailySalary,
		MonthlySalary:     emp.MonthlySalary,
	}
}
