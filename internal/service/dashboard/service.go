package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/dashboard"
	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	reports report.ReportService
	now     func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, reports report.ReportService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		reports:             reports,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// GetDashboardStats implements dashboard.DashboardService. Both periods are
// queried in parallel; the previous one has the same length and ends where
// the current one starts.
func (s *DashboardServiceImpl) GetDashboardStats(ctx context.Context, rng dashboard.DateRange) (dashboard.DashboardStats, error) {
	from, to, err := rng.Resolve(s.now())
	if err != nil {
		return dashboard.DashboardStats{}, err
	}
	return s.stats(ctx, from, to)
}

// GetDashboard returns stats and the session's reports using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, sess auth.Session, rng dashboard.DateRange) (dashboard.DashboardResponse, error) {
	from, to, err := rng.Resolve(s.now())
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	var (
		stats   dashboard.DashboardStats
		reports []report.Report
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headline stats (2 queries)
	g.Go(func() error {
		var err error
		stats, err = s.stats(gCtx, from, to)
		return err
	})

	// 2. Reports visible to the session
	g.Go(func() error {
		var err error
		reports, err = s.reports.GenerateReports(gCtx, sess, from, to)
		if err != nil {
			return fmt.Errorf("failed to generate reports: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Stats:   stats,
		Reports: reports,
	}, nil
}

func (s *DashboardServiceImpl) stats(ctx context.Context, from, to time.Time) (dashboard.DashboardStats, error) {
	length := to.Sub(from)
	prevFrom := from.Add(-length)

	var current, previous dashboard.PeriodTotals

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.DashboardRepository.GetPeriodTotals(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to get current period totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		previous, err = s.DashboardRepository.GetPeriodTotals(gCtx, prevFrom, from)
		if err != nil {
			return fmt.Errorf("failed to get previous period totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.DashboardStats{}, err
	}

	stats := dashboard.BuildStats(current, previous)
	stats.From = from.Format(dateLayout)
	stats.To = to.AddDate(0, 0, -1).Format(dateLayout)
	return stats, nil
}
