package response

import (
	"errors"
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/attendance"
	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/employee"
	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found or expired")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrGoogleSignInDisabled):
		NotFound(w, "Google sign-in is not available")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already registered for this employee and date")
	case errors.Is(err, attendance.ErrEmployeeInactive):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrCreateAttendanceFail):
		InternalServerError(w, attendance.ErrCreateAttendanceFail.Error())

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
