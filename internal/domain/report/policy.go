package report

import (
	"strings"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
)

// GraceCutoff is the latest clock time that does not count as a late
// arrival at a site.
type GraceCutoff struct {
	Hour   int
	Minute int
	Second int
}

// Exceeded reports whether t's clock time is past the cutoff on t's day.
func (c GraceCutoff) Exceeded(t time.Time) bool {
	limit := time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, c.Second, 0, t.Location())
	return t.After(limit)
}

// SitePolicy captures the per-site pay-period rules as data so that a
// policy change never touches the aggregation algorithm.
type SitePolicy struct {
	// GraceCutoff is nil for sites with no late-arrival control.
	GraceCutoff *GraceCutoff

	// SplitPeriod marks field sites paid on the twice-monthly schedule.
	SplitPeriod bool

	// SplitDay is the last day-of-month of the first half-period.
	SplitDay int

	// FullPeriodDays is the day count a full half-period pays out.
	FullPeriodDays int

	// FullPeriodThreshold is the minimum day count at which a half is
	// paid as a full half-period.
	FullPeriodThreshold int

	// PeriodLength divides the monthly rate into a daily rate. Field
	// pay periods are modeled as 30-day months, which is also why a
	// 31st calendar day has no slot in them.
	PeriodLength int
}

// DefaultSitePolicies returns the production policy table. Urban sites
// open at 08:00 with a five-minute tolerance, retail sites at 10:00;
// any site missing from the table never flags a late arrival.
func DefaultSitePolicies() map[string]SitePolicy {
	urban := &GraceCutoff{Hour: 8, Minute: 4, Second: 59}
	retail := &GraceCutoff{Hour: 10, Minute: 4, Second: 59}

	fieldSite := SitePolicy{
		GraceCutoff:         urban,
		SplitPeriod:         true,
		SplitDay:            15,
		FullPeriodDays:      15,
		FullPeriodThreshold: 14,
		PeriodLength:        30,
	}

	return map[string]SitePolicy{
		employee.SiteRedes:            fieldSite,
		employee.SiteCentro:           {GraceCutoff: urban},
		employee.SiteMetrocentro:      {GraceCutoff: retail},
		employee.SiteNuestroAtlantico: {GraceCutoff: retail},
		employee.SiteCarnaval:         {GraceCutoff: retail},
	}
}

// PolicyFor looks up the policy for a site code, case-insensitively.
// Unknown sites get the zero policy: no late control, simple daily pay.
func PolicyFor(policies map[string]SitePolicy, site string) SitePolicy {
	if p, ok := policies[strings.ToUpper(strings.TrimSpace(site))]; ok {
		return p
	}
	return SitePolicy{}
}
