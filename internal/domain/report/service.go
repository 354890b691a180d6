package report

import "context"

// ReportService defines the payroll report generation entry point
type ReportService interface {
	// GeneratePayrollReport validates the request, fetches attendance
	// and discounts for the range, and computes the per-employee pay
	// summary. Any fetch failure aborts the whole report.
	GeneratePayrollReport(ctx context.Context, req PayrollReportRequest) (PayrollReport, error)
}
