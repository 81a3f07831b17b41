package http

import (
	"log/slog"
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/employee"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ExpectedHours(w http.ResponseWriter, r *http.Request)
	Shifts(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Status: optionalQueryParam(r, "status"),
		Local:  optionalQueryParam(r, "local"),
	}

	employees, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, employees, &response.Meta{TotalItems: len(employees)})
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ExpectedHours implements EmployeeHandler.
func (h *employeeHandlerImpl) ExpectedHours(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.ExpectedHours(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Shifts lists the shift table in display order.
func (h *employeeHandlerImpl) Shifts(w http.ResponseWriter, r *http.Request) {
	shifts := make([]employee.ExpectedHoursResponse, 0, len(employee.Shifts))
	for _, s := range employee.Shifts {
		shifts = append(shifts, employee.NewExpectedHoursResponse(s))
	}
	response.Success(w, shifts)
}
