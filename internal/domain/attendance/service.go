package attendance

import (
	"context"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
)

type AttendanceService interface {
	// ListAttendances returns the records of one day, each with its derived status
	ListAttendances(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetAttendance returns a single record
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// PreviewAttendance derives lateness, early departure and status without saving
	PreviewAttendance(ctx context.Context, req PreviewAttendanceRequest) (PreviewAttendanceResponse, error)

	// CreateAttendance registers a record on behalf of the signed-in user
	CreateAttendance(ctx context.Context, sess auth.Session, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ExportAttendances renders the day's records as csv or xlsx
	ExportAttendances(ctx context.Context, filter AttendanceFilter, format ExportFormat) (ExportFile, error)
}
