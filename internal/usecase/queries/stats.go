package queries

import (
	"context"
	"log/slog"
	"time"

	"parking-app/internal/domain/stats"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/clock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrStatsUnavailable = errs.New("statistics unavailable")

//go:generate mockgen -source=stats.go -destination=../../mock/queriesmock/stats.go -package=queriesmock

type StatsQueries interface {
	GetAdminStats(ctx context.Context) (*AdminStatsView, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
}

type StatsReadStore interface {
	RevenueTotal(ctx context.Context, db query.DBTX) (int64, error)
	SpotCounts(ctx context.Context, db query.DBTX) (total, occupied int64, err error)
	NonAdminUserCount(ctx context.Context, db query.DBTX) (int64, error)
	RecentBookings(ctx context.Context, db query.DBTX, limit int) ([]RecentBookingView, error)
	DailyRevenue(ctx context.Context, db query.DBTX, loc *time.Location, since time.Time) (map[string]float64, error)
	UserTotals(ctx context.Context, db query.DBTX, userID uuid.UUID) (spentCents, bookings int64, err error)
	RecentActivities(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int) ([]BillingView, error)
	DailyUsage(ctx context.Context, db query.DBTX, userID uuid.UUID, loc *time.Location, since time.Time) (map[string]float64, error)
}

// StatsCache is best-effort: a miss or a backend failure reads as "not cached".
type StatsCache interface {
	GetAdminStats(ctx context.Context) (*AdminStatsView, bool)
	SetAdminStats(ctx context.Context, v *AdminStatsView)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, bool)
	SetUserStats(ctx context.Context, userID uuid.UUID, v *UserStatsView)
}

type statsQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore StatsReadStore
	cache     StatsCache
	clock     clock.Clock
	loc       *time.Location
}

func NewStatsQueries(uow shared.UnitOfWork, readStore StatsReadStore, cache StatsCache, clock clock.Clock, loc *time.Location) StatsQueries {
	return &statsQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
		clock:     clock,
		loc:       loc,
	}
}

func (q *statsQueriesImpl) GetAdminStats(ctx context.Context) (*AdminStatsView, error) {
	if cached, ok := q.cache.GetAdminStats(ctx); ok {
		return cached, nil
	}

	now := q.clock.Now()
	since := stats.WindowStart(now, q.loc, stats.SeriesDays)
	view := &AdminStatsView{}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		if view.TotalRevenueCents, err = q.readStore.RevenueTotal(ctx, db); err != nil {
			return err
		}

		total, occupied, err := q.readStore.SpotCounts(ctx, db)
		if err != nil {
			return err
		}
		view.OccupancyRate = stats.OccupancyRate(occupied, total)

		if view.TotalUsers, err = q.readStore.NonAdminUserCount(ctx, db); err != nil {
			return err
		}
		if view.RecentBookings, err = q.readStore.RecentBookings(ctx, db, stats.RecentLimit); err != nil {
			return err
		}

		daily, err := q.readStore.DailyRevenue(ctx, db, q.loc, since)
		if err != nil {
			return err
		}
		view.RevenueSeries = stats.BuildSeries(now, q.loc, stats.SeriesDays, daily)
		return nil
	})
	if err != nil {
		slog.Error("failed to aggregate admin stats", "error", err.Error())
		return nil, errs.Mark(err, ErrStatsUnavailable)
	}

	if view.RecentBookings == nil {
		view.RecentBookings = []RecentBookingView{}
	}
	q.cache.SetAdminStats(ctx, view)
	return view, nil
}

func (q *statsQueriesImpl) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error) {
	if cached, ok := q.cache.GetUserStats(ctx, userID); ok {
		return cached, nil
	}

	now := q.clock.Now()
	since := stats.WindowStart(now, q.loc, stats.SeriesDays)
	view := &UserStatsView{}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		if view.TotalSpentCents, view.TotalBookings, err = q.readStore.UserTotals(ctx, db, userID); err != nil {
			return err
		}
		if view.RecentActivities, err = q.readStore.RecentActivities(ctx, db, userID, stats.RecentLimit); err != nil {
			return err
		}

		daily, err := q.readStore.DailyUsage(ctx, db, userID, q.loc, since)
		if err != nil {
			return err
		}
		view.UsageSeries = stats.BuildSeries(now, q.loc, stats.SeriesDays, daily)
		return nil
	})
	if err != nil {
		slog.Error("failed to aggregate user stats", "user_id", userID, "error", err.Error())
		return nil, errs.Mark(err, ErrStatsUnavailable)
	}

	if view.RecentActivities == nil {
		view.RecentActivities = []BillingView{}
	}
	q.cache.SetUserStats(ctx, userID, view)
	return view, nil
}
