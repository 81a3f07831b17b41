package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gastrodesk/backoffice-api/internal/domain/attendance"
	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	return attendance.AttendanceFilter{
		Date:       optionalQueryParam(r, "date"),
		EmployeeID: optionalQueryParam(r, "employee_id"),
		Status:     optionalQueryParam(r, "status"),
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendances(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		slog.Error("ListAttendances service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, records, &response.Meta{TotalItems: len(records)})
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Export implements AttendanceHandler. The format defaults to csv.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := attendance.ExportCSV
	if f := r.URL.Query().Get("format"); f != "" {
		format = attendance.ExportFormat(f)
	}

	file, err := h.attendanceService.ExportAttendances(r.Context(), attendanceFilterFromQuery(r), format)
	if err != nil {
		slog.Error("ExportAttendances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}

// Preview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req attendance.PreviewAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PreviewAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.PreviewAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrSessionNotFound)
		return
	}

	result, err := h.attendanceService.CreateAttendance(r.Context(), sess, req)
	if err != nil {
		slog.Error("CreateAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Asistencia registrada correctamente", result)
}
