package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
)

type discountRepository struct {
	db *database.DB
}

// Create implements discount.DiscountRepository.
func (r *discountRepository) Create(ctx context.Context, d discount.Discount) (discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	d.ID = uuid.NewString()

	query := `
		INSERT INTO payroll_discounts (id, national_id, category, amount, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		d.ID,
		d.NationalID,
		d.Category,
		d.Amount,
		d.Date,
	).Scan(&d.CreatedAt)

	if err != nil {
		return discount.Discount{}, fmt.Errorf("failed to create discount: %w", err)
	}

	return d, nil
}

// ListByRange implements discount.DiscountRepository.
func (r *discountRepository) ListByRange(ctx context.Context, start, end time.Time) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, national_id, category, amount, date, created_at
		FROM payroll_discounts
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

// ListByEmployeeRange implements discount.DiscountRepository.
func (r *discountRepository) ListByEmployeeRange(ctx context.Context, nationalID string, start, end time.Time) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, national_id, category, amount, date, created_at
		FROM payroll_discounts
		WHERE national_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, nationalID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee discounts: %w", err)
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

func scanDiscounts(rows pgx.Rows) ([]discount.Discount, error) {
	var discounts []discount.Discount
	for rows.Next() {
		var d discount.Discount
		if err := rows.Scan(&d.ID, &d.NationalID, &d.Category, &d.Amount, &d.Date, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read discounts: %w", err)
	}
	return discounts, nil
}

func NewDiscountRepository(db *database.DB) discount.DiscountRepository {
	return &discountRepository{db: db}
}
