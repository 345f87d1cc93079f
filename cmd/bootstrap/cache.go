package bootstrap

import (
	"context"

	"parking-app/internal/infra/cache"
	"parking-app/internal/pkg/config"
	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"go.uber.org/fx"
)

type statsCache interface {
	queries.StatsCache
	commands.StatsInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewStatsCache,
		func(c statsCache) queries.StatsCache { return c },
		func(c statsCache) commands.StatsInvalidator { return c },
	),
)

func NewStatsCache(lc fx.Lifecycle, cfg config.Config) statsCache {
	client := cache.NewClient(context.Background(), cfg.Cache)
	if client == nil {
		return cache.NoopStatsCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisStatsCache(client, cfg.Cache.TTL)
}
