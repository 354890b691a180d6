package discount

import (
	"context"
	"time"
)

// DiscountRepository defines data access for payroll discounts.
type DiscountRepository interface {
	// Create persists a new discount line item
	Create(ctx context.Context, d Discount) (Discount, error)

	// ListByRange retrieves all discounts dated within [start, end],
	// for every employee; the report engine keys them by national ID
	ListByRange(ctx context.Context, start, end time.Time) ([]Discount, error)

	// ListByEmployeeRange retrieves one employee's discounts in [start, end]
	ListByEmployeeRange(ctx context.Context, nationalID string, start, end time.Time) ([]Discount, error)
}
