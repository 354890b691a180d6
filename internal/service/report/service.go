package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo   report.ReportRepository
	discountRepo discount.DiscountRepository
	policies     map[string]report.SitePolicy
	location     *time.Location
	fetchTimeout time.Duration
}

func NewReportService(
	reportRepo report.ReportRepository,
	discountRepo discount.DiscountRepository,
	policies map[string]report.SitePolicy,
	location *time.Location,
	fetchTimeout time.Duration,
) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		discountRepo: discountRepo,
		policies:     policies,
		location:     location,
		fetchTimeout: fetchTimeout,
	}
}

// GeneratePayrollReport implements report.ReportService.
func (s *ReportServiceImpl) GeneratePayrollReport(ctx context.Context, req report.PayrollReportRequest) (report.PayrollReport, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollReport{}, err
	}

	start, end := req.Range()

	// The two fetches are independent; run them concurrently and join
	// before any accumulation. A failure or timeout on either aborts
	// the whole report, never a partial one.
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	var (
		rows      []report.AttendanceRow
		discounts []discount.Discount
	)

	g, gctx := errgroup.WithContext(fetchCtx)
	g.Go(func() error {
		var err error
		rows, err = s.reportRepo.AttendanceRange(gctx, start, end)
		if err != nil {
			return fmt.Errorf("fetch attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		discounts, err = s.discountRepo.ListByRange(gctx, start, end)
		if err != nil {
			return fmt.Errorf("fetch discounts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.PayrollReport{}, fmt.Errorf("%w: %v", report.ErrReportAborted, err)
	}

	// The store hands timestamps back in the session zone. Calendar-day
	// grouping, the Sunday rule and the grace cutoffs are all defined on
	// the business clock, so every event is shifted into it first.
	for i := range rows {
		rows[i].ClockIn = rows[i].ClockIn.In(s.location)
	}

	rep := BuildPayrollReport(rows, discounts, req, s.policies)
	rep.GeneratedAt = time.Now().Format(time.RFC3339)

	if rep.SkippedOrphanEvents > 0 {
		slog.Warn("attendance events without a matching employee were skipped",
			"count", rep.SkippedOrphanEvents,
			"start_date", req.StartDate,
			"end_date", req.EndDate,
		)
	}
	if rep.SkippedInvalidEvents > 0 {
		slog.Warn("attendance events for employees missing site or rate were skipped",
			"count", rep.SkippedInvalidEvents,
			"start_date", req.StartDate,
			"end_date", req.EndDate,
		)
	}

	return rep, nil
}
