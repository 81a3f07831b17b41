package delivery

import "context"

type DeliveryService interface {
	// GetPlatformStats returns per-platform order counts, revenue and ratings
	GetPlatformStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
