package employee

import "context"

// EmployeeService defines business logic for employee registration and lookup
type EmployeeService interface {
	// Register validates and persists a new employee
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee by national ID
	Get(ctx context.Context, nationalID string) (EmployeeResponse, error)

	// List retrieves the employee directory
	List(ctx context.Context) (ListEmployeeResponse, error)
}
