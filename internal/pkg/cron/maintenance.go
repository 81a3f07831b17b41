package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SessionSweeper drops expired sessions from an in-process store.
type SessionSweeper interface {
	Sweep(ctx context.Context) int
}

// LimiterPruner forgets idle rate limit buckets.
type LimiterPruner interface {
	Prune(ctx context.Context) int
}

// ResetTokenPurger deletes used or expired password reset tokens.
type ResetTokenPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// MaintenanceJobs keeps in-memory state and reset tokens bounded. Nil
// dependencies are skipped; redis backed stores expire keys on their own.
type MaintenanceJobs struct {
	sessions SessionSweeper
	limiter  LimiterPruner
	resets   ResetTokenPurger
}

func NewMaintenanceJobs(sessions SessionSweeper, limiter LimiterPruner, resets ResetTokenPurger) *MaintenanceJobs {
	return &MaintenanceJobs{
		sessions: sessions,
		limiter:  limiter,
		resets:   resets,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	if j.sessions != nil {
		scheduler.AddJob("sweep_expired_sessions", 10*time.Minute, j.SweepExpiredSessions)
	}
	if j.limiter != nil {
		scheduler.AddJob("prune_rate_limit_buckets", 5*time.Minute, j.PruneRateLimitBuckets)
	}
	if j.resets != nil {
		scheduler.AddJob("purge_password_reset_tokens", 1*time.Hour, j.PurgePasswordResetTokens)
	}
}

func (j *MaintenanceJobs) SweepExpiredSessions(ctx context.Context) error {
	if removed := j.sessions.Sweep(ctx); removed > 0 {
		slog.Info("Cron: expired sessions removed", "count", removed)
	}
	return nil
}

func (j *MaintenanceJobs) PruneRateLimitBuckets(ctx context.Context) error {
	if pruned := j.limiter.Prune(ctx); pruned > 0 {
		slog.Debug("Cron: idle rate limit buckets pruned", "count", pruned)
	}
	return nil
}

func (j *MaintenanceJobs) PurgePasswordResetTokens(ctx context.Context) error {
	deleted, err := j.resets.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge password reset tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: password reset tokens purged", "count", deleted)
	}
	return nil
}
