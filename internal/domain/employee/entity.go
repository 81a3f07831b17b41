package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Position   string
	Local      string
	WorkShift  WorkShift
	Status     Status
	BaseSalary *decimal.Decimal
	HireDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// FullName joins first and last name the way the roster displays them.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
