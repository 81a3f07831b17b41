package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// RevenueByLocal implements report.ReportRepository.
func (r *reportRepositoryImpl) RevenueByLocal(ctx context.Context, from, to time.Time) ([]report.LocalRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT local, platform, COALESCE(SUM(amount), 0)
		FROM delivery_orders
		WHERE ordered_at >= $1 AND ordered_at < $2
		GROUP BY local, platform
		ORDER BY local, platform
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue by local: %w", err)
	}
	defer rows.Close()

	var result []report.LocalRevenue
	for rows.Next() {
		var lr report.LocalRevenue
		if err := rows.Scan(&lr.Local, &lr.Platform, &lr.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

// OrdersByPlatform implements report.ReportRepository.
func (r *reportRepositoryImpl) OrdersByPlatform(ctx context.Context, from, to time.Time) ([]report.PlatformOrders, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(ordered_at, 'YYYY-MM') AS month, platform, COUNT(*)
		FROM delivery_orders
		WHERE ordered_at >= $1 AND ordered_at < $2
		GROUP BY month, platform
		ORDER BY month, platform
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders by platform: %w", err)
	}
	defer rows.Close()

	var result []report.PlatformOrders
	for rows.Next() {
		var po report.PlatformOrders
		if err := rows.Scan(&po.Month, &po.Platform, &po.Orders); err != nil {
			return nil, fmt.Errorf("failed to scan orders row: %w", err)
		}
		result = append(result, po)
	}
	return result, rows.Err()
}

// AttendanceByDay implements report.ReportRepository.
func (r *reportRepositoryImpl) AttendanceByDay(ctx context.Context, from, to time.Time) ([]report.DayAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			date,
			COALESCE(SUM(CASE WHEN is_absent THEN 0 ELSE 1 END), 0) AS attended,
			COUNT(*) AS total
		FROM attendances
		WHERE date >= $1 AND date < $2
		GROUP BY date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by day: %w", err)
	}
	defer rows.Close()

	var result []report.DayAttendance
	for rows.Next() {
		var da report.DayAttendance
		if err := rows.Scan(&da.Date, &da.Attended, &da.Total); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, da)
	}
	return result, rows.Err()
}
