package attendance

import (
	"time"
)

// Attendance is one employee's record for one calendar day. Clock fields are
// "HH:MM" wall-clock strings on that day.
type Attendance struct {
	ID                    string
	EmployeeID            string
	Date                  time.Time
	CheckIn               *string
	CheckOut              *string
	ExpectedCheckIn       string
	ExpectedCheckOut      string
	LateMinutes           int
	EarlyDepartureMinutes int
	IsHoliday             bool
	IsAbsent              bool
	IsJustified           bool
	Notes                 *string
	CreatedBy             *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// DTO / Join
	EmployeeFirstName *string
	EmployeeLastName  *string
}

// Status classifies the record for display.
func (a Attendance) Status() Status {
	return Classify(a.IsAbsent, a.IsJustified, a.IsHoliday, a.LateMinutes)
}

// EmployeeName returns "first last", or "" when the employee is unknown.
func (a Attendance) EmployeeName() string {
	if a.EmployeeFirstName == nil && a.EmployeeLastName == nil {
		return ""
	}
	var first, last string
	if a.EmployeeFirstName != nil {
		first = *a.EmployeeFirstName
	}
	if a.EmployeeLastName != nil {
		last = *a.EmployeeLastName
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
