package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/dashboard"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetPeriodTotals returns active headcount and delivery figures in two queries
func (r *dashboardRepositoryImpl) GetPeriodTotals(ctx context.Context, from, to time.Time) (dashboard.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	var totals dashboard.PeriodTotals

	employeeQuery := `
		SELECT COUNT(*)
		FROM employees
		WHERE status = 'active' AND hire_date < $1
	`
	if err := q.QueryRow(ctx, employeeQuery, to).Scan(&totals.ActiveEmployees); err != nil {
		return dashboard.PeriodTotals{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	orderQuery := `
		SELECT
			COUNT(*) AS orders,
			COALESCE(SUM(amount), 0) AS revenue,
			COALESCE(AVG(rating), 0) AS average_rating
		FROM delivery_orders
		WHERE ordered_at >= $1 AND ordered_at < $2
	`
	err := q.QueryRow(ctx, orderQuery, from, to).Scan(
		&totals.DeliveryOrders, &totals.Revenue, &totals.AverageRating,
	)
	if err != nil {
		return dashboard.PeriodTotals{}, fmt.Errorf("failed to get delivery totals: %w", err)
	}

	return totals, nil
}
