package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	// Create persists a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByNationalID retrieves one employee, or ErrEmployeeNotFound
	GetByNationalID(ctx context.Context, nationalID string) (Employee, error)

	// List retrieves the whole directory ordered by last name
	List(ctx context.Context) ([]Employee, error)

	// Exists reports whether a national ID is already registered
	Exists(ctx context.Context, nationalID string) (bool, error)
}
