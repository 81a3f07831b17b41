package http

import (
	"log/slog"
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/payroll"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
)

type PayrollHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		Month: r.URL.Query().Get("month"),
		Local: optionalQueryParam(r, "local"),
	}

	result, err := h.payrollService.GetPayroll(r.Context(), filter)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
