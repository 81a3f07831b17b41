package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/dashboard"
	"github.com/gastrodesk/backoffice-api/internal/domain/delivery"
	"github.com/shopspring/decimal"
)

const (
	dateLayout  = "2006-01-02"
	totalsLabel = "Total"
)

type DeliveryServiceImpl struct {
	delivery.DeliveryRepository
	now func() time.Time
}

func NewDeliveryService(repo delivery.DeliveryRepository) delivery.DeliveryService {
	return &DeliveryServiceImpl{
		DeliveryRepository: repo,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// GetPlatformStats implements delivery.DeliveryService. Every platform in
// scope is listed, with zero figures when it had no orders.
func (s *DeliveryServiceImpl) GetPlatformStats(ctx context.Context, filter delivery.StatsFilter) (delivery.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return delivery.StatsResponse{}, err
	}

	from, to, err := dashboard.DateRange{From: filter.From, To: filter.To}.Resolve(s.now())
	if err != nil {
		return delivery.StatsResponse{}, err
	}

	var platform *delivery.Platform
	if filter.Platform != nil {
		p := delivery.Platform(*filter.Platform)
		platform = &p
	}

	stats, err := s.DeliveryRepository.StatsByPlatform(ctx, from, to, platform, filter.Local)
	if err != nil {
		return delivery.StatsResponse{}, fmt.Errorf("failed to get delivery stats: %w", err)
	}

	byPlatform := make(map[delivery.Platform]delivery.PlatformStats, len(stats))
	for _, st := range stats {
		byPlatform[st.Platform] = st
	}

	scope := delivery.Platforms
	if platform != nil {
		scope = []delivery.Platform{*platform}
	}

	var (
		totalOrders  int64
		totalRevenue = decimal.Zero
		ratingSum    = decimal.Zero
		ratedOrders  int64
	)

	resp := delivery.StatsResponse{
		From:      from.Format(dateLayout),
		To:        to.AddDate(0, 0, -1).Format(dateLayout),
		Platforms: make([]delivery.PlatformStatsResponse, 0, len(scope)),
	}
	for _, p := range scope {
		st, ok := byPlatform[p]
		if !ok {
			st = delivery.PlatformStats{Platform: p, Revenue: decimal.Zero}
		}
		resp.Platforms = append(resp.Platforms, toPlatformResponse(p.Label(), st))

		totalOrders += st.Orders
		totalRevenue = totalRevenue.Add(st.Revenue)
		if st.AverageRating != nil && st.RatedOrders > 0 {
			ratingSum = ratingSum.Add(st.AverageRating.Mul(decimal.NewFromInt(st.RatedOrders)))
			ratedOrders += st.RatedOrders
		}
	}

	totals := delivery.PlatformStats{Orders: totalOrders, RatedOrders: ratedOrders, Revenue: totalRevenue}
	if ratedOrders > 0 {
		avg := ratingSum.Div(decimal.NewFromInt(ratedOrders))
		totals.AverageRating = &avg
	}
	resp.Totals = toPlatformResponse(totalsLabel, totals)
	resp.Totals.Platform = ""

	return resp, nil
}

func toPlatformResponse(label string, st delivery.PlatformStats) delivery.PlatformStatsResponse {
	resp := delivery.PlatformStatsResponse{
		Platform: string(st.Platform),
		Label:    label,
		Orders:   st.Orders,
		Revenue:  st.Revenue.StringFixed(2),
	}
	if st.AverageRating != nil {
		rating := st.AverageRating.Round(1).InexactFloat64()
		resp.AverageRating = &rating
	}
	return resp
}
