package bootstrap

import (
	"context"
	"time"

	"parking-app/internal/infra/scheduler"
	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartOccupancySnapshot),
)

func StartOccupancySnapshot(
	lc fx.Lifecycle,
	cfg config.Config,
	loc *time.Location,
	stats queries.StatsQueries,
	invalidator commands.StatsInvalidator,
) {
	if !cfg.Scheduler.Enabled {
		return
	}

	job := scheduler.NewOccupancySnapshot(cfg.Scheduler, loc, stats, invalidator)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return job.Start()
		},
		OnStop: func(ctx context.Context) error {
			job.Stop(ctx)
			return nil
		},
	})
}
