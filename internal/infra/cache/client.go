package cache

import (
	"context"
	"log/slog"
	"time"

	"parking-app/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewClient returns nil when caching is disabled or the server does not
// answer a ping; callers fall back to NoopStatsCache.
func NewClient(ctx context.Context, cfg config.CacheConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, stats cache disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("stats cache enabled", "addr", cfg.Addr, "ttl", cfg.TTL.String())
	return client
}
