package payroll

import (
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

type PayrollFilter struct {
	Month string  `json:"month"` // YYYY-MM, defaults to current month
	Local *string `json:"local,omitempty"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineResponse struct {
	EmployeeID            string `json:"employee_id"`
	EmployeeName          string `json:"employee_name"`
	Local                 string `json:"local"`
	Position              string `json:"position"`
	BaseSalary            string `json:"base_salary"`
	DaysRecorded          int    `json:"days_recorded"`
	LateMinutes           int    `json:"late_minutes"`
	EarlyDepartureMinutes int    `json:"early_departure_minutes"`
	UnjustifiedAbsences   int    `json:"unjustified_absences"`
	JustifiedAbsences     int    `json:"justified_absences"`
	LateDeduction         string `json:"late_deduction"`
	EarlyDeduction        string `json:"early_deduction"`
	AbsenceDeduction      string `json:"absence_deduction"`
	TotalDeductions       string `json:"total_deductions"`
	NetPay                string `json:"net_pay"`
}

type PayrollResponse struct {
	Month           string         `json:"month"`
	Employees       []LineResponse `json:"employees"`
	TotalBaseSalary string         `json:"total_base_salary"`
	TotalDeductions string         `json:"total_deductions"`
	TotalNetPay     string         `json:"total_net_pay"`
}

func ToLineResponse(l Line) LineResponse {
	s := l.Summary
	name := s.FirstName
	if s.LastName != "" {
		if name != "" {
			name += " "
		}
		name += s.LastName
	}
	return LineResponse{
		EmployeeID:            s.EmployeeID,
		EmployeeName:          name,
		Local:                 s.Local,
		Position:              s.Position,
		BaseSalary:            s.BaseSalary.StringFixed(2),
		DaysRecorded:          s.DaysRecorded,
		LateMinutes:           s.LateMinutes,
		EarlyDepartureMinutes: s.EarlyDepartureMinutes,
		UnjustifiedAbsences:   s.UnjustifiedAbsences,
		JustifiedAbsences:     s.JustifiedAbsences,
		LateDeduction:         l.LateDeduction.StringFixed(2),
		EarlyDeduction:        l.EarlyDeduction.StringFixed(2),
		AbsenceDeduction:      l.AbsenceDeduction.StringFixed(2),
		TotalDeductions:       l.TotalDeductions.StringFixed(2),
		NetPay:                l.NetPay.StringFixed(2),
	}
}
