package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	NationalID        string
	FirstName         string
	LastName          string
	Position          Position
	Site              string
	HireDate          time.Time
	BankName          string
	BankAccountNumber string
	BankAccountType   string
	DailySalary       decimal.Decimal
	MonthlySalary     decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PaidMonthly reports whether the employee is on a monthly rate.
// Registration guarantees exactly one of the two rates is non-zero.
func (e Employee) PaidMonthly() bool {
	return e.MonthlySalary.IsPositive()
}

// HasRate reports whether the employee carries a usable compensation rate.
// A record failing this is a data-integrity fault, not a zero-pay employee.
func (e Employee) HasRate() bool {
	return e.DailySalary.IsPositive() || e.MonthlySalary.IsPositive()
}

type Position string

const (
	PositionAdministrator Position = "ADMINISTRADOR"
	PositionAdvisor       Position = "ASESOR"
	PositionWarehouse     Position = "BODEGUERO"
)

// Work sites. REDES is the field site: its staff is paid on the
// twice-monthly schedule instead of daily-rate times days worked.
const (
	SiteMetrocentro      = "METROCENTRO"
	SiteNuestroAtlantico = "NUESTRO ATLANTICO"
	SiteRedes            = "REDES"
	SiteCentro           = "CENTRO"
	SiteCarnaval         = "CARNAVAL"
)

// Sites returns all registered work-site codes.
func Sites() []string {
	return []string{SiteMetrocentro, SiteNuestroAtlantico, SiteRedes, SiteCentro, SiteCarnaval}
}

// Positions returns all registered job positions.
func Positions() []string {
	return []string{string(PositionAdministrator), string(PositionAdvisor), string(PositionWarehouse)}
}
