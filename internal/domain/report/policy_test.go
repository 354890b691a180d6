package report

import (
	"testing"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func TestGraceCutoff_Exceeded(t *testing.T) {
	cutoff := GraceCutoff{Hour: 8, Minute: 4, Second: 59}

	at := func(h, m, s int) time.Time {
		return time.Date(2025, time.March, 4, h, m, s, 0, time.UTC)
	}

	assert.False(t, cutoff.Exceeded(at(7, 59, 0)))
	assert.False(t, cutoff.Exceeded(at(8, 4, 59)))
	assert.True(t, cutoff.Exceeded(at(8, 5, 0)))
	assert.True(t, cutoff.Exceeded(at(12, 0, 0)))
}

func TestPolicyFor_CaseInsensitive(t *testing.T) {
	policies := DefaultSitePolicies()

	assert.True(t, PolicyFor(policies, "redes").SplitPeriod)
	assert.True(t, PolicyFor(policies, " Redes ").SplitPeriod)
	assert.False(t, PolicyFor(policies, employee.SiteCentro).SplitPeriod)
}

func TestPolicyFor_UnknownSiteGetsZeroPolicy(t *testing.T) {
	p := PolicyFor(DefaultSitePolicies(), "BODEGA SUR")

	assert.Nil(t, p.GraceCutoff)
	assert.False(t, p.SplitPeriod)
}

func TestDefaultSitePolicies_Cutoffs(t *testing.T) {
	policies := DefaultSitePolicies()

	urban := policies[employee.SiteCentro].GraceCutoff
	assert.Equal(t, &GraceCutoff{Hour: 8, Minute: 4, Second: 59}, urban)

	retail := policies[employee.SiteMetrocentro].GraceCutoff
	assert.Equal(t, &GraceCutoff{Hour: 10, Minute: 4, Second: 59}, retail)

	field := policies[employee.SiteRedes]
	assert.Equal(t, 15, field.SplitDay)
	assert.Equal(t, 15, field.FullPeriodDays)
	assert.Equal(t, 14, field.FullPeriodThreshold)
	assert.Equal(t, 30, field.PeriodLength)
}
