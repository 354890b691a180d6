package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/handler/http/response"
)

// EmployeeHandler defines the employee handler interface
type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Register handles POST /api/v1/employees
func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered successfully", resp)
}

// Get handles GET /api/v1/employees/{nationalID}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")
	if nationalID == "" {
		response.BadRequest(w, "National ID is required", nil)
		return
	}

	resp, err := h.employeeService.Get(r.Context(), nationalID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
