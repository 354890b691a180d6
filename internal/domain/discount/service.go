package discount

import "context"

// DiscountService defines business logic for payroll discount entry
type DiscountService interface {
	// Register validates and persists a discount dated today
	Register(ctx context.Context, req RegisterDiscountRequest) (DiscountResponse, error)

	// ListByEmployee retrieves one employee's line items for the drill-down view
	ListByEmployee(ctx context.Context, filter EmployeeDiscountFilter) (ListDiscountResponse, error)
}
