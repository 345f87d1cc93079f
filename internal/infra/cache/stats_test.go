//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"parking-app/internal/domain/stats"
	"parking-app/internal/usecase/queries"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	port := nat.Port("6379/tcp")
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(port)},
			WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, mapped.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStatsCache(t *testing.T) {
	ctx := context.Background()
	c := NewRedisStatsCache(startRedis(t), time.Minute)
	userID := uuid.New()

	_, ok := c.GetAdminStats(ctx)
	assert.False(t, ok)

	admin := &queries.AdminStatsView{
		TotalRevenueCents: 1200,
		OccupancyRate:     50,
		TotalUsers:        3,
		RecentBookings:    []queries.RecentBookingView{},
		RevenueSeries:     []stats.Point{{Date: "2025-06-10", Label: "Tue", Value: 1200}},
	}
	c.SetAdminStats(ctx, admin)
	c.SetUserStats(ctx, userID, &queries.UserStatsView{TotalSpentCents: 400, TotalBookings: 1})

	got, ok := c.GetAdminStats(ctx)
	require.True(t, ok)
	assert.Equal(t, admin, got)

	userStats, ok := c.GetUserStats(ctx, userID)
	require.True(t, ok)
	assert.Equal(t, int64(400), userStats.TotalSpentCents)

	t.Run("nil user only drops the admin view", func(t *testing.T) {
		c.InvalidateStats(ctx, uuid.Nil)
		_, ok := c.GetAdminStats(ctx)
		assert.False(t, ok)
		_, ok = c.GetUserStats(ctx, userID)
		assert.True(t, ok)
	})

	t.Run("user invalidation drops both views", func(t *testing.T) {
		c.SetAdminStats(ctx, admin)
		c.InvalidateStats(ctx, userID)
		_, ok := c.GetAdminStats(ctx)
		assert.False(t, ok)
		_, ok = c.GetUserStats(ctx, userID)
		assert.False(t, ok)
	})
}
