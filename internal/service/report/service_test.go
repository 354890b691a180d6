package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	rows []report.AttendanceRow
	err  error
}

func (f *fakeReportRepo) AttendanceRange(_ context.Context, _, _ time.Time) ([]report.AttendanceRow, error) {
	return f.rows, f.err
}

type fakeDiscountRepo struct {
	discounts []discount.Discount
	err       error
}

func (f *fakeDiscountRepo) Create(_ context.Context, d discount.Discount) (discount.Discount, error) {
	return d, nil
}

func (f *fakeDiscountRepo) ListByRange(_ context.Context, _, _ time.Time) ([]discount.Discount, error) {
	return f.discounts, f.err
}

func (f *fakeDiscountRepo) ListByEmployeeRange(_ context.Context, _ string, _, _ time.Time) ([]discount.Discount, error) {
	return f.discounts, f.err
}

func TestGeneratePayrollReport_HappyPath(t *testing.T) {
	emp := &employee.Employee{
		NationalID:  "100",
		FirstName:   "Maria",
		LastName:    "Lopez",
		Site:        employee.SiteCentro,
		DailySalary: decimal.NewFromInt(25000),
	}
	reportRepo := &fakeReportRepo{rows: []report.AttendanceRow{
		{ID: "a", ClockIn: time.Date(2025, time.March, 4, 7, 0, 0, 0, time.UTC), Employee: emp},
		{ID: "b", ClockIn: time.Date(2025, time.March, 5, 7, 0, 0, 0, time.UTC), Employee: emp},
	}}
	discountRepo := &fakeDiscountRepo{discounts: []discount.Discount{
		{NationalID: "100", Category: discount.CategoryLoans, Amount: decimal.NewFromInt(10000)},
	}}

	svc := NewReportService(reportRepo, discountRepo, report.DefaultSitePolicies(), time.UTC, time.Second)

	rep, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rep.Summaries, 1)
	assert.True(t, rep.Summaries[0].NetPay.Equal(decimal.NewFromInt(40000)))
	assert.NotEmpty(t, rep.GeneratedAt)
}

func TestGeneratePayrollReport_UsesBusinessTimezone(t *testing.T) {
	bogota := time.FixedZone("-05", -5*60*60)
	emp := &employee.Employee{
		NationalID:  "100",
		FirstName:   "Maria",
		LastName:    "Lopez",
		Site:        employee.SiteCentro,
		DailySalary: decimal.NewFromInt(25000),
	}

	// Tuesday 07:00 on the business clock arrives as 12:00 UTC from the
	// store; judged on the UTC reading it would be hours past the
	// 08:04:59 cutoff.
	reportRepo := &fakeReportRepo{rows: []report.AttendanceRow{
		{ID: "a", ClockIn: time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC), Employee: emp},
	}}

	svc := NewReportService(reportRepo, &fakeDiscountRepo{}, report.DefaultSitePolicies(), bogota, time.Second)

	rep, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rep.Summaries, 1)

	s := rep.Summaries[0]
	assert.Empty(t, s.LateDates)
	assert.Equal(t, 1, s.EffectiveDays)
}

func TestGeneratePayrollReport_EveningEventStaysOnBusinessDay(t *testing.T) {
	bogota := time.FixedZone("-05", -5*60*60)
	emp := &employee.Employee{
		NationalID:  "100",
		FirstName:   "Maria",
		LastName:    "Lopez",
		Site:        employee.SiteCentro,
		DailySalary: decimal.NewFromInt(25000),
	}

	// 01:00 UTC on the 5th is 20:00 on the 4th of the business clock:
	// the morning and evening events are one worked day, not two.
	reportRepo := &fakeReportRepo{rows: []report.AttendanceRow{
		{ID: "a", ClockIn: time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC), Employee: emp},
		{ID: "b", ClockIn: time.Date(2025, time.March, 5, 1, 0, 0, 0, time.UTC), Employee: emp},
	}}

	svc := NewReportService(reportRepo, &fakeDiscountRepo{}, report.DefaultSitePolicies(), bogota, time.Second)

	rep, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rep.Summaries, 1)
	assert.Equal(t, 1, rep.Summaries[0].EffectiveDays)
}

func TestGeneratePayrollReport_LateOnBusinessClock(t *testing.T) {
	bogota := time.FixedZone("-05", -5*60*60)
	emp := &employee.Employee{
		NationalID:  "100",
		FirstName:   "Maria",
		LastName:    "Lopez",
		Site:        employee.SiteCentro,
		DailySalary: decimal.NewFromInt(25000),
	}

	// 13:06 UTC is 08:06 on the business clock: past the urban cutoff.
	reportRepo := &fakeReportRepo{rows: []report.AttendanceRow{
		{ID: "a", ClockIn: time.Date(2025, time.March, 4, 13, 6, 0, 0, time.UTC), Employee: emp},
	}}

	svc := NewReportService(reportRepo, &fakeDiscountRepo{}, report.DefaultSitePolicies(), bogota, time.Second)

	rep, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rep.Summaries, 1)
	assert.Equal(t, []string{"2025-03-04"}, rep.Summaries[0].LateDates)
}

func TestGeneratePayrollReport_InvalidRequest(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeDiscountRepo{}, report.DefaultSitePolicies(), time.UTC, time.Second)

	_, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{})
	assert.Error(t, err)
}

func TestGeneratePayrollReport_AttendanceFetchFailureAborts(t *testing.T) {
	reportRepo := &fakeReportRepo{err: errors.New("connection reset")}
	svc := NewReportService(reportRepo, &fakeDiscountRepo{}, report.DefaultSitePolicies(), time.UTC, time.Second)

	_, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	assert.ErrorIs(t, err, report.ErrReportAborted)
}

func TestGeneratePayrollReport_DiscountFetchFailureAborts(t *testing.T) {
	discountRepo := &fakeDiscountRepo{err: errors.New("connection reset")}
	svc := NewReportService(&fakeReportRepo{}, discountRepo, report.DefaultSitePolicies(), time.UTC, time.Second)

	_, err := svc.GeneratePayrollReport(context.Background(), report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	assert.ErrorIs(t, err, report.ErrReportAborted)
}
