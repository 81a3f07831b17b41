package attendance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/attendance"
	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/employee"
	"github.com/gastrodesk/backoffice-api/internal/pkg/export"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

const (
	exportSheetName  = "Asistencias"
	unknownEmployee  = "Desconocido"
	exportDateLayout = "02/01/2006"
	exportFilePrefix = "asistencias_"
	filterDateLayout = "2006-01-02"
)

var exportHeaders = []string{
	"Empleado",
	"Fecha",
	"Hora Entrada",
	"Hora Salida",
	"Hora Entrada Esperada",
	"Hora Salida Esperada",
	"Minutos Tarde",
	"Minutos Salida Anticipada",
	"Es Feriado",
	"Ausente",
	"Justificado",
	"Notas",
}

// Recorder receives a notification for every stored attendance.
type Recorder interface {
	AttendanceCreated(status string)
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	recorder Recorder
	now      func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, recorder Recorder) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		recorder:             recorder,
		now:                  time.Now,
	}
}

// ListAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendances(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, _, err := s.listRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	// Non-UUID ids would fail the uuid cast in postgres
	if !validator.IsValidUUID(id) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// PreviewAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PreviewAttendance(ctx context.Context, req attendance.PreviewAttendanceRequest) (attendance.PreviewAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PreviewAttendanceResponse{}, err
	}

	input := req.AttendanceInput
	if req.EmployeeID != nil {
		emp, err := s.EmployeeRepository.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return attendance.PreviewAttendanceResponse{}, err
		}
		input = withShiftDefaults(input, emp.WorkShift)
	}

	rec := fromInput(input)
	rec.Normalize()

	return attendance.PreviewAttendanceResponse{
		ExpectedCheckIn:       rec.ExpectedCheckIn,
		ExpectedCheckOut:      rec.ExpectedCheckOut,
		LateMinutes:           rec.LateMinutes,
		EarlyDepartureMinutes: rec.EarlyDepartureMinutes,
		Status:                attendance.NewStatusResponse(rec.Status()),
	}, nil
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, sess auth.Session, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive() {
		return attendance.AttendanceResponse{}, attendance.ErrEmployeeInactive
	}

	date, _ := time.Parse(filterDateLayout, req.Date)

	rec := fromInput(withShiftDefaults(req.AttendanceInput, emp.WorkShift))
	rec.EmployeeID = emp.ID
	rec.Date = date
	rec.Notes = req.Notes
	if sess.UserID != "" {
		createdBy := sess.UserID
		rec.CreatedBy = &createdBy
	}
	rec.Normalize()

	created, err := s.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceExists) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("%w: %w", attendance.ErrCreateAttendanceFail, err)
	}
	created.EmployeeFirstName = &emp.FirstName
	created.EmployeeLastName = &emp.LastName

	if s.recorder != nil {
		s.recorder.AttendanceCreated(created.Status().Code())
	}
	return attendance.ToResponse(created), nil
}

// ExportAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendances(ctx context.Context, filter attendance.AttendanceFilter, format attendance.ExportFormat) (attendance.ExportFile, error) {
	if format != attendance.ExportCSV && format != attendance.ExportXLSX {
		return attendance.ExportFile{}, attendance.ErrUnsupportedFormat
	}

	records, day, err := s.listRecords(ctx, filter)
	if err != nil {
		return attendance.ExportFile{}, err
	}

	table := export.Table{Headers: exportHeaders, Rows: make([][]string, 0, len(records))}
	for _, rec := range records {
		table.Rows = append(table.Rows, exportRow(rec))
	}

	file := attendance.ExportFile{FileName: exportFilePrefix + day.Format(filterDateLayout) + "." + string(format)}
	var buf bytes.Buffer
	switch format {
	case attendance.ExportXLSX:
		file.ContentType = export.ContentTypeXLSX
		err = export.WriteXLSX(&buf, exportSheetName, table)
	default:
		file.ContentType = export.ContentTypeCSV
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		return attendance.ExportFile{}, fmt.Errorf("failed to render attendance export: %w", err)
	}
	file.Content = buf.Bytes()
	return file, nil
}

// listRecords loads one day's records and applies the status filter.
func (s *AttendanceServiceImpl) listRecords(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, time.Time, error) {
	if err := filter.Validate(); err != nil {
		return nil, time.Time{}, err
	}

	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if filter.Date != nil {
		day, _ = time.Parse(filterDateLayout, *filter.Date)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day, filter.EmployeeID)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	if filter.Status == nil {
		return records, day, nil
	}
	want, _ := attendance.ParseStatus(*filter.Status)
	filtered := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		if rec.Status() == want {
			filtered = append(filtered, rec)
		}
	}
	return filtered, day, nil
}

// withShiftDefaults fills empty expected times from the employee's shift.
func withShiftDefaults(in attendance.AttendanceInput, shift employee.WorkShift) attendance.AttendanceInput {
	expectedIn, expectedOut := employee.ExpectedHours(shift)
	if in.ExpectedCheckIn == "" {
		in.ExpectedCheckIn = expectedIn
	}
	if in.ExpectedCheckOut == "" {
		in.ExpectedCheckOut = expectedOut
	}
	return in
}

func fromInput(in attendance.AttendanceInput) attendance.Attendance {
	return attendance.Attendance{
		CheckIn:          emptyToNil(in.CheckIn),
		CheckOut:         emptyToNil(in.CheckOut),
		ExpectedCheckIn:  in.ExpectedCheckIn,
		ExpectedCheckOut: in.ExpectedCheckOut,
		IsHoliday:        in.IsHoliday,
		IsAbsent:         in.IsAbsent,
		IsJustified:      in.IsJustified,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func exportRow(rec attendance.Attendance) []string {
	name := rec.EmployeeName()
	if name == "" {
		name = unknownEmployee
	}
	return []string{
		name,
		rec.Date.Format(exportDateLayout),
		valueOrEmpty(rec.CheckIn),
		valueOrEmpty(rec.CheckOut),
		rec.ExpectedCheckIn,
		rec.ExpectedCheckOut,
		strconv.Itoa(rec.LateMinutes),
		strconv.Itoa(rec.EarlyDepartureMinutes),
		export.YesNo(rec.IsHoliday),
		export.YesNo(rec.IsAbsent),
		export.YesNo(rec.IsJustified),
		valueOrEmpty(rec.Notes),
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
