package delivery

import (
	"context"
	"time"
)

type DeliveryRepository interface {
	// StatsByPlatform aggregates orders in [from, to) per platform
	StatsByPlatform(ctx context.Context, from, to time.Time, platform *Platform, local *string) ([]PlatformStats, error)
}
