package http

import (
	"encoding/json"
	"net/http"

	"github.com/nomina-hr/nomina-backend-go/internal/domain/discount"
	"github.com/nomina-hr/nomina-backend-go/internal/handler/http/response"
)

// DiscountHandler defines the discount handler interface
type DiscountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type discountHandlerImpl struct {
	discountService discount.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService discount.DiscountService) DiscountHandler {
	return &discountHandlerImpl{
		discountService: discountService,
	}
}

// Register handles POST /api/v1/discounts
func (h *discountHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req discount.RegisterDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.discountService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Discount registered successfully", resp)
}

// ListByEmployee handles GET /api/v1/discounts
func (h *discountHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	filter := discount.EmployeeDiscountFilter{
		NationalID: r.URL.Query().Get("national_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	resp, err := h.discountService.ListByEmployee(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
