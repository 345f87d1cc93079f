package scheduler

import (
	"context"
	"log/slog"
	"time"

	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// OccupancySnapshot periodically recomputes the admin dashboard, logging the
// headline numbers and leaving a fresh copy in the stats cache.
type OccupancySnapshot struct {
	cron  *cron.Cron
	spec  string
	stats queries.StatsQueries
	cache commands.StatsInvalidator
}

func NewOccupancySnapshot(cfg config.SchedulerConfig, loc *time.Location, stats queries.StatsQueries, cache commands.StatsInvalidator) *OccupancySnapshot {
	return &OccupancySnapshot{
		cron:  cron.New(cron.WithLocation(loc)),
		spec:  cfg.Spec,
		stats: stats,
		cache: cache,
	}
}

func (s *OccupancySnapshot) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("occupancy snapshot scheduled", "spec", s.spec)
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *OccupancySnapshot) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *OccupancySnapshot) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.cache.InvalidateStats(ctx, uuid.Nil)
	view, err := s.stats.GetAdminStats(ctx)
	if err != nil {
		slog.Error("occupancy snapshot failed", "error", err.Error())
		return
	}

	slog.Info("occupancy snapshot",
		"occupancy_rate", view.OccupancyRate,
		"total_revenue_cents", view.TotalRevenueCents,
		"total_users", view.TotalUsers)
}
