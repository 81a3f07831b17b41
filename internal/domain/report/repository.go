package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// RevenueByLocal sums order amounts per location and platform in [from, to)
	RevenueByLocal(ctx context.Context, from, to time.Time) ([]LocalRevenue, error)

	// OrdersByPlatform counts orders per month and platform in [from, to)
	OrdersByPlatform(ctx context.Context, from, to time.Time) ([]PlatformOrders, error)

	// AttendanceByDay counts attendances per day in [from, to); justified absences are not attended
	AttendanceByDay(ctx context.Context, from, to time.Time) ([]DayAttendance, error)
}
