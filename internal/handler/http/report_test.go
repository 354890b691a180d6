package http

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	rep report.PayrollReport
	err error
}

func (s *stubReportService) GeneratePayrollReport(_ context.Context, req report.PayrollReportRequest) (report.PayrollReport, error) {
	if s.err != nil {
		return report.PayrollReport{}, s.err
	}
	rep := s.rep
	rep.StartDate = req.StartDate
	rep.EndDate = req.EndDate
	return rep, nil
}

func sampleReport() report.PayrollReport {
	return report.PayrollReport{
		Summaries: []report.EmployeeSummary{
			{
				NationalID:    "100",
				FirstName:     "Maria",
				LastName:      "Lopez",
				Site:          "CENTRO",
				EffectiveDays: 4,
				LateDates:     []string{"2025-03-04"},
				DailyRate:     decimal.NewFromInt(25000),
				GrossPay:      decimal.NewFromInt(100000),
				DiscountTotal: decimal.NewFromInt(10000),
				NetPay:        decimal.NewFromInt(90000),
			},
		},
		TotalPayroll:    decimal.NewFromInt(90000),
		TotalDaysWorked: 4,
	}
}

func TestReportHandler_Generate(t *testing.T) {
	handler := NewReportHandler(&stubReportService{rep: sampleReport()})

	body, _ := json.Marshal(report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/payroll", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    report.PayrollReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Summaries, 1)
	assert.Equal(t, "100", resp.Data.Summaries[0].NationalID)
	assert.Equal(t, 4, resp.Data.TotalDaysWorked)
}

func TestReportHandler_GenerateBadBody(t *testing.T) {
	handler := NewReportHandler(&stubReportService{rep: sampleReport()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/payroll", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_GenerateAborted(t *testing.T) {
	handler := NewReportHandler(&stubReportService{err: report.ErrReportAborted})

	body, _ := json.Marshal(report.PayrollReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/payroll", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReportHandler_ExportCSV(t *testing.T) {
	handler := NewReportHandler(&stubReportService{rep: sampleReport()})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/payroll/export?start_date=2025-03-01&end_date=2025-03-31", nil)
	rec := httptest.NewRecorder()

	handler.Export(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payroll_2025-03-01_2025-03-31.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)

	// Header, one summary, and the totals line.
	require.Len(t, records, 3)
	assert.Equal(t, "national_id", records[0][0])
	assert.Equal(t, "100", records[1][0])
	assert.Equal(t, "90000", records[1][len(records[1])-1])
	assert.Equal(t, "TOTAL", records[2][0])
	assert.Equal(t, "90000", records[2][len(records[2])-1])
}
