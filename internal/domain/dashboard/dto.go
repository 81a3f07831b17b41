package dashboard

import (
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultRangeDays is the length of the range used when none is given.
const DefaultRangeDays = 30

// DateRange is an inclusive day range; empty bounds default to the last 30 days.
type DateRange struct {
	From *string `json:"from,omitempty"` // YYYY-MM-DD
	To   *string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (r *DateRange) Validate() error {
	var errs validator.ValidationErrors

	if r.From != nil {
		if _, ok := validator.IsValidDate(*r.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if r.To != nil {
		if _, ok := validator.IsValidDate(*r.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if r.From != nil && r.To != nil && len(errs) == 0 && *r.From > *r.To {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must not be after to",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds resolves the range into a half-open [from, to) interval of whole days.
func (r DateRange) Bounds(now time.Time) (from, to time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to = today.AddDate(0, 0, 1)
	if r.To != nil {
		if t, ok := validator.IsValidDate(*r.To); ok {
			to = t.AddDate(0, 0, 1)
		}
	}
	from = to.AddDate(0, 0, -DefaultRangeDays)
	if r.From != nil {
		if f, ok := validator.IsValidDate(*r.From); ok {
			from = f
		}
	}
	return from, to
}

// Resolve validates the range and resolves its bounds. A lone from later
// than the default end is rejected like an explicit reversed range.
func (r DateRange) Resolve(now time.Time) (from, to time.Time, err error) {
	if err := r.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, to = r.Bounds(now)
	if !from.Before(to) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{
			Field:   "from",
			Message: "from must not be after to",
		}}
	}
	return from, to, nil
}

// DashboardStats are the headline figures with their change against the
// preceding period of equal length.
type DashboardStats struct {
	ActiveEmployees       int64   `json:"active_employees"`
	ActiveEmployeesChange float64 `json:"active_employees_change"`
	TotalDeliveryOrders   int64   `json:"total_delivery_orders"`
	DeliveryOrdersChange  float64 `json:"delivery_orders_change"`
	TotalRevenue          string  `json:"total_revenue"`
	RevenueChange         float64 `json:"revenue_change"`
	AverageRating         float64 `json:"average_rating"`
	RatingChange          float64 `json:"rating_change"`
	From                  string  `json:"from"`
	To                    string  `json:"to"`
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Stats   DashboardStats  `json:"stats"`
	Reports []report.Report `json:"reports"`
}

// PeriodTotals are the raw figures of one period.
type PeriodTotals struct {
	ActiveEmployees int64
	DeliveryOrders  int64
	Revenue         decimal.Decimal
	AverageRating   decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// PercentChange returns the relative change in percent rounded to one
// decimal. A zero previous value yields 0.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1).InexactFloat64()
}

// BuildStats compares two periods.
func BuildStats(current, previous PeriodTotals) DashboardStats {
	return DashboardStats{
		ActiveEmployees:       current.ActiveEmployees,
		ActiveEmployeesChange: PercentChange(decimal.NewFromInt(current.ActiveEmployees), decimal.NewFromInt(previous.ActiveEmployees)),
		TotalDeliveryOrders:   current.DeliveryOrders,
		DeliveryOrdersChange:  PercentChange(decimal.NewFromInt(current.DeliveryOrders), decimal.NewFromInt(previous.DeliveryOrders)),
		TotalRevenue:          current.Revenue.StringFixed(2),
		RevenueChange:         PercentChange(current.Revenue, previous.Revenue),
		AverageRating:         current.AverageRating.Round(1).InexactFloat64(),
		RatingChange:          current.AverageRating.Sub(previous.AverageRating).Round(1).InexactFloat64(),
	}
}
