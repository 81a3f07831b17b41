package report

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/delivery"
	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const weekLength = 7

var hundred = decimal.NewFromInt(100)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(repo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: repo,
	}
}

// GenerateReports implements report.ReportService. Reports the session
// cannot view are left out; the rest keep the order of report.Definitions.
func (s *ReportServiceImpl) GenerateReports(ctx context.Context, sess auth.Session, from, to time.Time) ([]report.Report, error) {
	if !from.Before(to) {
		return nil, report.ErrInvalidRange
	}

	var visible []report.Definition
	for _, def := range report.Definitions {
		if sess.HasPermission(def.Permission) {
			visible = append(visible, def)
		}
	}

	reports := make([]report.Report, len(visible))
	g, gCtx := errgroup.WithContext(ctx)
	for i, def := range visible {
		g.Go(func() error {
			data, err := s.build(gCtx, def.Name, from, to)
			if err != nil {
				return fmt.Errorf("failed to build report %q: %w", def.Name, err)
			}
			reports[i] = report.Report{Name: def.Name, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportServiceImpl) build(ctx context.Context, name string, from, to time.Time) (report.ChartData, error) {
	switch name {
	case report.NameBillingByLocal:
		rows, err := s.ReportRepository.RevenueByLocal(ctx, from, to)
		if err != nil {
			return report.ChartData{}, err
		}
		return billingByLocal(rows), nil
	case report.NameOrdersByPlatform:
		rows, err := s.ReportRepository.OrdersByPlatform(ctx, from, to)
		if err != nil {
			return report.ChartData{}, err
		}
		return ordersByPlatform(rows), nil
	case report.NameWeeklyAttendance:
		rows, err := s.ReportRepository.AttendanceByDay(ctx, to.AddDate(0, 0, -weekLength), to)
		if err != nil {
			return report.ChartData{}, err
		}
		return weeklyAttendance(rows), nil
	default:
		return report.ChartData{}, fmt.Errorf("unknown report %q", name)
	}
}

// billingByLocal labels by location and draws one dataset per platform.
func billingByLocal(rows []report.LocalRevenue) report.ChartData {
	var locals, platforms []string
	revenue := make(map[[2]string]decimal.Decimal)
	for _, r := range rows {
		if !slices.Contains(locals, r.Local) {
			locals = append(locals, r.Local)
		}
		if !slices.Contains(platforms, r.Platform) {
			platforms = append(platforms, r.Platform)
		}
		key := [2]string{r.Local, r.Platform}
		revenue[key] = revenue[key].Add(r.Revenue)
	}
	slices.Sort(locals)
	platforms = orderPlatforms(platforms)

	chart := report.ChartData{Labels: nonNil(locals), Datasets: []report.Dataset{}}
	for _, p := range platforms {
		data := make([]float64, len(locals))
		for i, l := range locals {
			data[i] = revenue[[2]string{l, p}].Round(2).InexactFloat64()
		}
		chart.Datasets = append(chart.Datasets, report.Dataset{Label: delivery.Platform(p).Label(), Data: data})
	}
	return chart
}

// ordersByPlatform labels by month and draws one dataset per platform.
func ordersByPlatform(rows []report.PlatformOrders) report.ChartData {
	var months, platforms []string
	orders := make(map[[2]string]int64)
	for _, r := range rows {
		if !slices.Contains(months, r.Month) {
			months = append(months, r.Month)
		}
		if !slices.Contains(platforms, r.Platform) {
			platforms = append(platforms, r.Platform)
		}
		orders[[2]string{r.Month, r.Platform}] += r.Orders
	}
	slices.Sort(months)
	platforms = orderPlatforms(platforms)

	chart := report.ChartData{Labels: nonNil(months), Datasets: []report.Dataset{}}
	for _, p := range platforms {
		data := make([]float64, len(months))
		for i, m := range months {
			data[i] = float64(orders[[2]string{m, p}])
		}
		chart.Datasets = append(chart.Datasets, report.Dataset{Label: delivery.Platform(p).Label(), Data: data})
	}
	return chart
}

// weeklyAttendance is the attended share per weekday, Monday first.
// Weekdays without records read 0.
func weeklyAttendance(rows []report.DayAttendance) report.ChartData {
	var attended, total [weekLength]int64
	for _, r := range rows {
		i := (int(r.Date.Weekday()) + 6) % weekLength
		attended[i] += r.Attended
		total[i] += r.Total
	}

	data := make([]float64, weekLength)
	for i := range data {
		if total[i] == 0 {
			continue
		}
		data[i] = decimal.NewFromInt(attended[i]).
			Div(decimal.NewFromInt(total[i])).
			Mul(hundred).
			Round(1).
			InexactFloat64()
	}

	return report.ChartData{
		Labels:   slices.Clone(report.WeekdayLabels),
		Datasets: []report.Dataset{{Label: report.WeeklyAttendanceLabel, Data: data}},
	}
}

// orderPlatforms puts known platforms in display order and the rest after
// them alphabetically.
func orderPlatforms(found []string) []string {
	ordered := make([]string, 0, len(found))
	for _, p := range delivery.Platforms {
		if slices.Contains(found, string(p)) {
			ordered = append(ordered, string(p))
		}
	}
	var rest []string
	for _, p := range found {
		if !delivery.Platform(p).IsValid() {
			rest = append(rest, p)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
