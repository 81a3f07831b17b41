package attendance

import (
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

// AttendanceInput carries the editable fields shared by preview and create.
type AttendanceInput struct {
	CheckIn          *string `json:"check_in,omitempty"`  // HH:MM
	CheckOut         *string `json:"check_out,omitempty"` // HH:MM
	ExpectedCheckIn  string  `json:"expected_check_in"`   // HH:MM, defaults from shift
	ExpectedCheckOut string  `json:"expected_check_out"`  // HH:MM, defaults from shift
	IsHoliday        bool    `json:"is_holiday"`
	IsAbsent         bool    `json:"is_absent"`
	IsJustified      bool    `json:"is_justified"`
}

func (in *AttendanceInput) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	clocks := []struct {
		field string
		value *string
	}{
		{"check_in", in.CheckIn},
		{"check_out", in.CheckOut},
		{"expected_check_in", &in.ExpectedCheckIn},
		{"expected_check_out", &in.ExpectedCheckOut},
	}
	for _, c := range clocks {
		if c.value == nil || *c.value == "" {
			continue
		}
		if !validator.IsValidClock(*c.value) {
			errs = append(errs, validator.ValidationError{
				Field:   c.field,
				Message: c.field + " must be in HH:MM format",
			})
		}
	}
	return errs
}

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Notes      *string `json:"notes,omitempty"`
	AttendanceInput
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	errs = r.AttendanceInput.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewAttendanceRequest asks for derived values without persisting anything.
type PreviewAttendanceRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	AttendanceInput
}

func (r *PreviewAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	errs = r.AttendanceInput.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatusResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func NewStatusResponse(s Status) StatusResponse {
	return StatusResponse{Code: s.Code(), Label: s.Label()}
}

type PreviewAttendanceResponse struct {
	ExpectedCheckIn       string         `json:"expected_check_in"`
	ExpectedCheckOut      string         `json:"expected_check_out"`
	LateMinutes           int            `json:"late_minutes"`
	EarlyDepartureMinutes int            `json:"early_departure_minutes"`
	Status                StatusResponse `json:"status"`
}

type AttendanceResponse struct {
	ID                    string         `json:"id"`
	EmployeeID            string         `json:"employee_id"`
	EmployeeName          string         `json:"employee_name"`
	Date                  string         `json:"date"`
	CheckIn               *string        `json:"check_in"`
	CheckOut              *string        `json:"check_out"`
	ExpectedCheckIn       string         `json:"expected_check_in"`
	ExpectedCheckOut      string         `json:"expected_check_out"`
	LateMinutes           int            `json:"late_minutes"`
	EarlyDepartureMinutes int            `json:"early_departure_minutes"`
	IsHoliday             bool           `json:"is_holiday"`
	IsAbsent              bool           `json:"is_absent"`
	IsJustified           bool           `json:"is_justified"`
	Notes                 *string        `json:"notes"`
	Status                StatusResponse `json:"status"`
	CreatedBy             *string        `json:"created_by,omitempty"`
	CreatedAt             string         `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                    a.ID,
		EmployeeID:            a.EmployeeID,
		EmployeeName:          a.EmployeeName(),
		Date:                  a.Date.Format("2006-01-02"),
		CheckIn:               a.CheckIn,
		CheckOut:              a.CheckOut,
		ExpectedCheckIn:       a.ExpectedCheckIn,
		ExpectedCheckOut:      a.ExpectedCheckOut,
		LateMinutes:           a.LateMinutes,
		EarlyDepartureMinutes: a.EarlyDepartureMinutes,
		IsHoliday:             a.IsHoliday,
		IsAbsent:              a.IsAbsent,
		IsJustified:           a.IsJustified,
		Notes:                 a.Notes,
		Status:                NewStatusResponse(a.Status()),
		CreatedBy:             a.CreatedBy,
		CreatedAt:             a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type AttendanceFilter struct {
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"` // present, late, holiday, absent, justified
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if f.Status != nil {
		if _, ok := ParseStatus(*f.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of present, late, holiday, absent, justified",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportFile is a rendered attendance export ready to be streamed.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
