package discount

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-hr/nomina-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type DiscountServiceImpl struct {
	db           *database.DB
	discountRepo discount.DiscountRepository
	employeeRepo employee.EmployeeRepository
	location     *time.Location
}

func NewDiscountService(
	db *database.DB,
	discountRepo discount.DiscountRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) discount.DiscountService {
	return &DiscountServiceImpl{
		db:           db,
		discountRepo: discountRepo,
		employeeRepo: employeeRepo,
		location:     location,
	}
}

// Register implements discount.DiscountService.
func (s *DiscountServiceImpl) Register(ctx context.Context, req discount.RegisterDiscountRequest) (discount.DiscountResponse, error) {
	if err := req.Validate(); err != nil {
		return discount.DiscountResponse{}, err
	}

	amount, _ := decimal.NewFromString(req.Amount)

	today := time.Now().In(s.location)
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	// The existence check and the insert run in one transaction so a
	// concurrently deleted employee cannot end up with a dangling line.
	var created discount.Discount
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.employeeRepo.Exists(txCtx, req.NationalID)
		if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}

		created, err = s.discountRepo.Create(txCtx, discount.Discount{
			NationalID: req.NationalID,
			Category:   req.Category,
			Amount:     amount,
			Date:       date,
		})
		return err
	})
	if err != nil {
		return discount.DiscountResponse{}, err
	}

	return toResponse(created), nil
}

// ListByEmployee implements discount.DiscountService.
func (s *DiscountServiceImpl) ListByEmployee(ctx context.Context, filter discount.EmployeeDiscountFilter) (discount.ListDiscountResponse, error) {
	if err := filter.Validate(); err != nil {
		return discount.ListDiscountResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	items, err := s.discountRepo.ListByEmployeeRange(ctx, filter.NationalID, start, end)
	if err != nil {
		return discount.ListDiscountResponse{}, fmt.Errorf("failed to list discounts: %w", err)
	}

	result := discount.ListDiscountResponse{
		Data:  make([]discount.DiscountResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, d := range items {
		result.Data = append(result.Data, toResponse(d))
		result.Total = result.Total.Add(d.Amount)
	}
	return result, nil
}

func toResponse(d discount.Discount) discount.DiscountResponse {
	return discount.DiscountResponse{
		ID:         d.ID,
		NationalID: d.NationalID,
		Category:   d.Category,
		Amount:     d.Amount,
		Date:       d.Date.Format("2006-01-02"),
	}
}
