package delivery

import (
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
)

type StatsFilter struct {
	From     *string `json:"from,omitempty"` // YYYY-MM-DD inclusive
	To       *string `json:"to,omitempty"`   // YYYY-MM-DD inclusive
	Platform *string `json:"platform,omitempty"`
	Local    *string `json:"local,omitempty"`
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if f.From != nil && f.To != nil && len(errs) == 0 && *f.From > *f.To {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must not be after to",
		})
	}
	if f.Platform != nil && !Platform(*f.Platform).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "platform",
			Message: "platform must be one of pedidosya, rappi, mercadopago",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PlatformStatsResponse struct {
	Platform      string   `json:"platform"`
	Label         string   `json:"label"`
	Orders        int64    `json:"orders"`
	Revenue       string   `json:"revenue"`
	AverageRating *float64 `json:"average_rating"`
}

type StatsResponse struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Platforms []PlatformStatsResponse `json:"platforms"`
	Totals    PlatformStatsResponse   `json:"totals"`
}
