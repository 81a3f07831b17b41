package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetPeriodTotals returns active employees at the end of the period and order figures in [from, to)
	GetPeriodTotals(ctx context.Context, from, to time.Time) (PeriodTotals, error)
}
