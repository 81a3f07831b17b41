package employee

import (
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

type EmployeeFilter struct {
	Status *string `json:"status,omitempty"` // active, inactive
	Local  *string `json:"local,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	FullName   string  `json:"full_name"`
	Position   string  `json:"position"`
	Local      string  `json:"local"`
	WorkShift  string  `json:"work_shift"`
	ShiftLabel string  `json:"shift_label"`
	Status     string  `json:"status"`
	BaseSalary *string `json:"base_salary,omitempty"`
	HireDate   string  `json:"hire_date"`
}

// ExpectedHoursResponse carries the scheduled times used to prefill an attendance form.
type ExpectedHoursResponse struct {
	EmployeeID       string `json:"employee_id,omitempty"`
	WorkShift        string `json:"work_shift"`
	ShiftLabel       string `json:"shift_label"`
	ExpectedCheckIn  string `json:"expected_check_in"`
	ExpectedCheckOut string `json:"expected_check_out"`
}

// NewExpectedHoursResponse builds the response for a shift.
func NewExpectedHoursResponse(shift WorkShift) ExpectedHoursResponse {
	in, out := ExpectedHours(shift)
	return ExpectedHoursResponse{
		WorkShift:        string(shift),
		ShiftLabel:       shift.Label(),
		ExpectedCheckIn:  in,
		ExpectedCheckOut: out,
	}
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Position:   e.Position,
		Local:      e.Local,
		WorkShift:  string(e.WorkShift),
		ShiftLabel: e.WorkShift.Label(),
		Status:     string(e.Status),
		HireDate:   e.HireDate.Format("2006-01-02"),
	}
	if e.BaseSalary != nil {
		s := e.BaseSalary.StringFixed(2)
		resp.BaseSalary = &s
	}
	return resp
}
