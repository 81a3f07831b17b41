package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID joined with the employee name
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByDate retrieves the records of one day ordered by employee name
	ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]Attendance, error)
}
