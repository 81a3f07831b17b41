package payroll

import (
	"github.com/shopspring/decimal"
)

// daysPerMonth is the divisor used to price one unjustified absence.
var daysPerMonth = decimal.NewFromInt(30)

// Rates are the per-minute deductions applied to attendance.
type Rates struct {
	LateMinuteRate  decimal.Decimal
	EarlyMinuteRate decimal.Decimal
}

// AttendanceSummary aggregates one active employee's month of attendance.
type AttendanceSummary struct {
	EmployeeID            string
	FirstName             string
	LastName              string
	Local                 string
	Position              string
	BaseSalary            decimal.Decimal
	DaysRecorded          int
	LateMinutes           int
	EarlyDepartureMinutes int
	UnjustifiedAbsences   int
	JustifiedAbsences     int
}

// Line is the computed payroll of one employee.
type Line struct {
	Summary          AttendanceSummary
	LateDeduction    decimal.Decimal
	EarlyDeduction   decimal.Decimal
	AbsenceDeduction decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal
}

// Calculate prices the month's attendance against the base salary. Net pay
// never drops below zero.
func Calculate(s AttendanceSummary, rates Rates) Line {
	late := rates.LateMinuteRate.Mul(decimal.NewFromInt(int64(s.LateMinutes))).Round(2)
	early := rates.EarlyMinuteRate.Mul(decimal.NewFromInt(int64(s.EarlyDepartureMinutes))).Round(2)
	absence := s.BaseSalary.Div(daysPerMonth).Mul(decimal.NewFromInt(int64(s.UnjustifiedAbsences))).Round(2)

	total := late.Add(early).Add(absence)
	net := s.BaseSalary.Sub(total)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Line{
		Summary:          s,
		LateDeduction:    late,
		EarlyDeduction:   early,
		AbsenceDeduction: absence,
		TotalDeductions:  total,
		NetPay:           net.Round(2),
	}
}
