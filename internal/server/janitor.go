package server

import (
	"context"
	"log/slog"
	"time"

	"expense-tracker-web/internal/services"
)

// MountedViews is the part of the view service the janitor sweeps
type MountedViews interface {
	CleanExpired() int
	Mounted() int
}

// StaleCredentials removes credentials no client cookie can still present
type StaleCredentials interface {
	CleanupStaleCredentials(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Janitor periodically drops expired view snapshots and stale credentials
type Janitor struct {
	views       MountedViews
	credentials StaleCredentials
	maxAge      time.Duration
	interval    time.Duration
	metrics     services.MetricsRecorderInterface
	logger      *slog.Logger
}

// NewJanitor sweeps every interval. Credentials untouched for maxAge are
// removed; use the client cookie lifetime.
func NewJanitor(
	views MountedViews,
	credentials StaleCredentials,
	maxAge, interval time.Duration,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *Janitor {
	return &Janitor{
		views:       views,
		credentials: credentials,
		maxAge:      maxAge,
		interval:    interval,
		metrics:     metrics,
		logger:      logger,
	}
}

// Run sweeps until ctx is done
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass
func (j *Janitor) Sweep(ctx context.Context) {
	if removed := j.views.CleanExpired(); removed > 0 {
		j.logger.Debug("Expired transaction views removed", "count", removed)
	}
	j.metrics.RecordGauge("mounted_views", float64(j.views.Mounted()), nil)

	removed, err := j.credentials.CleanupStaleCredentials(ctx, j.maxAge)
	if err != nil {
		j.logger.Error("Failed to clean up stale credentials", "error", err)
		return
	}
	if removed > 0 {
		j.logger.Info("Stale credentials removed", "count", removed)
	}
}
