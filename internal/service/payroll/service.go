package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/payroll"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	rates payroll.Rates
	now   func() time.Time
}

func NewPayrollService(repo payroll.PayrollRepository, rates payroll.Rates) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: repo,
		rates:             rates,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, filter payroll.PayrollFilter) (payroll.PayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	from := monthStart(s.now())
	if filter.Month != "" {
		from, _ = validator.IsValidMonth(filter.Month)
	}
	to := from.AddDate(0, 1, 0)

	summaries, err := s.PayrollRepository.GetMonthlySummaries(ctx, from, to, filter.Local)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get monthly summaries: %w", err)
	}

	totalBase := decimal.Zero
	totalDeductions := decimal.Zero
	totalNet := decimal.Zero

	lines := make([]payroll.LineResponse, 0, len(summaries))
	for _, summary := range summaries {
		line := payroll.Calculate(summary, s.rates)
		lines = append(lines, payroll.ToLineResponse(line))

		totalBase = totalBase.Add(summary.BaseSalary)
		totalDeductions = totalDeductions.Add(line.TotalDeductions)
		totalNet = totalNet.Add(line.NetPay)
	}

	return payroll.PayrollResponse{
		Month:           from.Format(monthLayout),
		Employees:       lines,
		TotalBaseSalary: totalBase.StringFixed(2),
		TotalDeductions: totalDeductions.StringFixed(2),
		TotalNetPay:     totalNet.StringFixed(2),
	}, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
