package http

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	"github.com/nomina-hr/nomina-backend-go/internal/handler/http/response"
)

// ReportHandler defines the payroll report handler interface
type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate handles POST /api/v1/reports/payroll
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req report.PayrollReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.reportService.GeneratePayrollReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Export handles GET /api/v1/reports/payroll/export. It runs the same
// report as Generate and streams the summaries as a CSV attachment.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.PayrollReportRequest{
		StartDate:     r.URL.Query().Get("start_date"),
		EndDate:       r.URL.Query().Get("end_date"),
		Site:          r.URL.Query().Get("site"),
		EmployeeQuery: r.URL.Query().Get("employee_query"),
	}

	resp, err := h.reportService.GeneratePayrollReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.csv", resp.StartDate, resp.EndDate)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"national_id", "first_name", "last_name", "site",
		"bank_name", "bank_account_number", "bank_account_type",
		"effective_days", "late_dates", "rest_day_worked",
		"daily_rate", "gross_pay", "discount_total", "net_pay",
	}
	if err := writer.Write(header); err != nil {
		return
	}

	for _, s := range resp.Summaries {
		record := []string{
			s.NationalID,
			s.FirstName,
			s.LastName,
			s.Site,
			s.BankName,
			s.BankAccountNumber,
			s.BankAccountType,
			strconv.Itoa(s.EffectiveDays),
			strings.Join(s.LateDates, " "),
			strconv.FormatBool(s.RestDayWorked),
			s.DailyRate.String(),
			s.GrossPay.String(),
			s.DiscountTotal.String(),
			s.NetPay.String(),
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}

	totals := []string{
		"TOTAL", "", "", "", "", "", "",
		strconv.Itoa(resp.TotalDaysWorked),
		"", "", "", "", "",
		resp.TotalPayroll.String(),
	}
	_ = writer.Write(totals)
}
