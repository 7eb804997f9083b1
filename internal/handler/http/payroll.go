package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/payroll"
	"github.com/hr-staff/hr-staff-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayroll(w http.ResponseWriter, r *http.Request)
	SearchPayroll(w http.ResponseWriter, r *http.Request)
	PayrollEmployees(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	CreatePayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ListPayroll implements PayrollHandler
func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	records, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// SearchPayroll implements PayrollHandler
func (h *payrollHandlerImpl) SearchPayroll(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	records, err := h.payrollService.Search(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// PayrollEmployees implements PayrollHandler - the employee picker options
func (h *payrollHandlerImpl) PayrollEmployees(w http.ResponseWriter, r *http.Request) {
	options, err := h.payrollService.Employees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, options)
}

// GetPayroll implements PayrollHandler
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	slip, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// GetPayslip implements PayrollHandler. With ?format=pdf the payslip streams
// as a PDF attachment instead of JSON.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if r.URL.Query().Get("format") == "pdf" {
		data, err := h.payrollService.PayslipPDF(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	slip, err := h.payrollService.Payslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// CreatePayroll implements PayrollHandler
func (h *payrollHandlerImpl) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	slip, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll entry created successfully", slip)
}

// UpdatePayroll implements PayrollHandler
func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	slip, err := h.payrollService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry updated successfully", slip)
}

// DeletePayroll implements PayrollHandler
func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry deleted successfully", nil)
}
