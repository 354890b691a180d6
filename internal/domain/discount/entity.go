package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

type Discount struct {
	ID         string
	NationalID string
	Category   string
	Amount     decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}

// Payroll discount categories offered by the entry form.
const (
	CategoryLoans         = "PRESTAMOS"
	CategoryGarmentCredit = "DESCUENTOS DE PRENDAS"
	CategoryGarments      = "PRENDAS"
	CategoryFreight       = "FLETES"
	CategoryCashShortage  = "ABONOS A DESCUADRE DE CAJA"
)

// Categories returns all discount categories.
func Categories() []string {
	return []string{CategoryLoans, CategoryGarmentCredit, CategoryGarments, CategoryFreight, CategoryCashShortage}
}
