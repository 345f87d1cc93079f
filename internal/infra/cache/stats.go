package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	adminStatsKey  = "stats:admin"
	userStatsKeyNS = "stats:user:"
)

// RedisStatsCache stores dashboard stats as JSON. Every failure degrades to a
// cache miss; the database stays the source of truth.
type RedisStatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStatsCache(client redis.Cmdable, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func (c *RedisStatsCache) GetAdminStats(ctx context.Context) (*queries.AdminStatsView, bool) {
	var v queries.AdminStatsView
	if !c.get(ctx, adminStatsKey, &v) {
		return nil, false
	}
	return &v, true
}

func (c *RedisStatsCache) SetAdminStats(ctx context.Context, v *queries.AdminStatsView) {
	c.set(ctx, adminStatsKey, v)
}

func (c *RedisStatsCache) GetUserStats(ctx context.Context, userID uuid.UUID) (*queries.UserStatsView, bool) {
	var v queries.UserStatsView
	if !c.get(ctx, userStatsKey(userID), &v) {
		return nil, false
	}
	return &v, true
}

func (c *RedisStatsCache) SetUserStats(ctx context.Context, userID uuid.UUID, v *queries.UserStatsView) {
	c.set(ctx, userStatsKey(userID), v)
}

// InvalidateStats drops the admin view and, unless userID is uuid.Nil, the
// user's own view.
func (c *RedisStatsCache) InvalidateStats(ctx context.Context, userID uuid.UUID) {
	keys := []string{adminStatsKey}
	if userID != uuid.Nil {
		keys = append(keys, userStatsKey(userID))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("failed to invalidate stats cache", "keys", keys, "error", err.Error())
	}
}

func (c *RedisStatsCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("stats cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("stats cache entry is corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *RedisStatsCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to encode stats cache entry", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("stats cache write failed", "key", key, "error", err.Error())
	}
}

func userStatsKey(userID uuid.UUID) string {
	return userStatsKeyNS + userID.String()
}

// NoopStatsCache is used when caching is disabled or Redis is unreachable.
type NoopStatsCache struct{}

func (NoopStatsCache) GetAdminStats(context.Context) (*queries.AdminStatsView, bool) { return nil, false }
func (NoopStatsCache) SetAdminStats(context.Context, *queries.AdminStatsView)        {}
func (NoopStatsCache) GetUserStats(context.Context, uuid.UUID) (*queries.UserStatsView, bool) {
	return nil, false
}
func (NoopStatsCache) SetUserStats(context.Context, uuid.UUID, *queries.UserStatsView) {}
func (NoopStatsCache) InvalidateStats(context.Context, uuid.UUID)                      {}
