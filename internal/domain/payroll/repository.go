package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// GetMonthlySummaries aggregates attendance in [from, to) for every active employee
	GetMonthlySummaries(ctx context.Context, from, to time.Time, local *string) ([]AttendanceSummary, error)
}
