package dashboard

import (
	"context"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboardStats returns headline figures for the range
	GetDashboardStats(ctx context.Context, rng DateRange) (DashboardStats, error)

	// GetDashboard returns stats and the reports visible to the session, fetched in parallel
	GetDashboard(ctx context.Context, sess auth.Session, rng DateRange) (DashboardResponse, error)
}
