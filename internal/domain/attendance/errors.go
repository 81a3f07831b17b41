package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrAttendanceExists     = errors.New("attendance already registered for this employee and date")
	ErrEmployeeInactive     = errors.New("attendance can only be registered for active employees")
	ErrUnsupportedFormat    = errors.New("export format must be csv or xlsx")
	ErrCreateAttendanceFail = errors.New("Error al registrar la asistencia. Por favor, intente nuevamente.")
)
