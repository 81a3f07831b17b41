package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

type Platform string

const (
	PlatformPedidosYa   Platform = "pedidosya"
	PlatformRappi       Platform = "rappi"
	PlatformMercadoPago Platform = "mercadopago"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{PlatformPedidosYa, PlatformRappi, PlatformMercadoPago}

var platformLabels = map[Platform]string{
	PlatformPedidosYa:   "PedidosYa",
	PlatformRappi:       "Rappi",
	PlatformMercadoPago: "MercadoPago",
}

func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p Platform) IsValid() bool {
	_, ok := platformLabels[p]
	return ok
}

type Order struct {
	ID        string
	Platform  Platform
	Local     string
	Amount    decimal.Decimal
	Rating    *decimal.Decimal
	OrderedAt time.Time
}

// PlatformStats aggregates orders of one platform.
type PlatformStats struct {
	Platform      Platform
	Orders        int64
	RatedOrders   int64
	Revenue       decimal.Decimal
	AverageRating *decimal.Decimal // over RatedOrders only
}
