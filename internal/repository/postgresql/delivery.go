package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/delivery"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
)

type deliveryRepositoryImpl struct {
	db *database.DB
}

func NewDeliveryRepository(db *database.DB) delivery.DeliveryRepository {
	return &deliveryRepositoryImpl{db: db}
}

// StatsByPlatform implements delivery.DeliveryRepository.
func (r *deliveryRepositoryImpl) StatsByPlatform(ctx context.Context, from, to time.Time, platform *delivery.Platform, local *string) ([]delivery.PlatformStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT platform, COUNT(*), COUNT(rating), COALESCE(SUM(amount), 0), AVG(rating)
		FROM delivery_orders
		WHERE ordered_at >= $1 AND ordered_at < $2
		  AND ($3::text IS NULL OR platform = $3::text)
		  AND ($4::text IS NULL OR local = $4::text)
		GROUP BY platform
		ORDER BY platform
	`

	var platformArg *string
	if platform != nil {
		p := string(*platform)
		platformArg = &p
	}

	rows, err := q.Query(ctx, query, from, to, platformArg, local)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery stats: %w", err)
	}
	defer rows.Close()

	var result []delivery.PlatformStats
	for rows.Next() {
		var s delivery.PlatformStats
		if err := rows.Scan(&s.Platform, &s.Orders, &s.RatedOrders, &s.Revenue, &s.AverageRating); err != nil {
			return nil, fmt.Errorf("failed to scan delivery stats: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
