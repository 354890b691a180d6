package report

import (
	"testing"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollReportRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     PayrollReportRequest
		wantErr bool
	}{
		{"valid range all sites", PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"}, false},
		{"valid with site", PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31", Site: employee.SiteRedes}, false},
		{"site case-insensitive", PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31", Site: "centro"}, false},
		{"legacy all alias", PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31", Site: "TODAS"}, false},
		{"missing start", PayrollReportRequest{EndDate: "2025-03-31"}, true},
		{"missing end", PayrollReportRequest{StartDate: "2025-03-01"}, true},
		{"bad format", PayrollReportRequest{StartDate: "01/03/2025", EndDate: "2025-03-31"}, true},
		{"inverted range", PayrollReportRequest{StartDate: "2025-03-31", EndDate: "2025-03-01"}, true},
		{"unknown site", PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31", Site: "SUCURSAL NORTE"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayrollReportRequest_AllSites(t *testing.T) {
	for _, site := range []string{"", "ALL", "all", "TODAS", "todas", " ALL "} {
		req := PayrollReportRequest{Site: site}
		assert.True(t, req.AllSites(), "site %q", site)
	}

	req := PayrollReportRequest{Site: employee.SiteRedes}
	assert.False(t, req.AllSites())
}

func TestPayrollReportRequest_RangeIsDayInclusive(t *testing.T) {
	req := PayrollReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	start, end := req.Range()

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)

	// End of the range covers the whole last day.
	lastEvent := time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)
	require.True(t, end.After(lastEvent))
	require.True(t, end.Before(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
}
