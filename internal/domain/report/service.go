package report

import (
	"context"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
)

type ReportService interface {
	// GenerateReports builds every report the session may view for [from, to)
	GenerateReports(ctx context.Context, sess auth.Session, from, to time.Time) ([]Report, error)
}
