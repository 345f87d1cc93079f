//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parking-app/internal/infra/query"
	"parking-app/internal/mock/queriesmock"
	"parking-app/internal/pkg/clock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/queries"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// passthroughUoW runs read callbacks without a database.
type passthroughUoW struct{}

func (passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, nil)
}

func (passthroughUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (passthroughUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

type StatsQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockStatsReadStore
	cache *queriesmock.MockStatsCache
	now   time.Time
	sut   queries.StatsQueries
}

func (s *StatsQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockStatsReadStore(s.ctrl)
	s.cache = queriesmock.NewMockStatsCache(s.ctrl)
	s.now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s.sut = queries.NewStatsQueries(passthroughUoW{}, s.store, s.cache, clock.NewFixedClock(s.now), time.UTC)
}

func (s *StatsQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatsQueriesTestSuite) TestGetAdminStats_CacheHit() {
	cached := &queries.AdminStatsView{TotalRevenueCents: 4200}
	s.cache.EXPECT().GetAdminStats(gomock.Any()).Return(cached, true)

	got, err := s.sut.GetAdminStats(context.Background())
	s.Require().NoError(err)
	s.Same(cached, got)
}

func (s *StatsQueriesTestSuite) TestGetAdminStats_Aggregates() {
	since := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	s.cache.EXPECT().GetAdminStats(gomock.Any()).Return(nil, false)
	s.store.EXPECT().RevenueTotal(gomock.Any(), gomock.Any()).Return(int64(12000), nil)
	s.store.EXPECT().SpotCounts(gomock.Any(), gomock.Any()).Return(int64(8), int64(2), nil)
	s.store.EXPECT().NonAdminUserCount(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	s.store.EXPECT().RecentBookings(gomock.Any(), gomock.Any(), 5).Return(nil, nil)
	s.store.EXPECT().DailyRevenue(gomock.Any(), gomock.Any(), time.UTC, since).
		Return(map[string]float64{"2025-06-04": 40, "2025-06-10": 80}, nil)
	s.cache.EXPECT().SetAdminStats(gomock.Any(), gomock.Any())

	got, err := s.sut.GetAdminStats(context.Background())
	s.Require().NoError(err)

	s.Equal(int64(12000), got.TotalRevenueCents)
	s.InDelta(25.0, got.OccupancyRate, 0.0001)
	s.Equal(int64(3), got.TotalUsers)
	s.NotNil(got.RecentBookings)
	s.Empty(got.RecentBookings)

	s.Require().Len(got.RevenueSeries, 7)
	s.Equal("2025-06-04", got.RevenueSeries[0].Date)
	s.Equal(40.0, got.RevenueSeries[0].Value)
	s.Equal("2025-06-10", got.RevenueSeries[6].Date)
	s.Equal(80.0, got.RevenueSeries[6].Value)
	s.Zero(got.RevenueSeries[3].Value)
}

func (s *StatsQueriesTestSuite) TestGetAdminStats_NoSpots() {
	s.cache.EXPECT().GetAdminStats(gomock.Any()).Return(nil, false)
	s.store.EXPECT().RevenueTotal(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	s.store.EXPECT().SpotCounts(gomock.Any(), gomock.Any()).Return(int64(0), int64(0), nil)
	s.store.EXPECT().NonAdminUserCount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	s.store.EXPECT().RecentBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.store.EXPECT().DailyRevenue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.cache.EXPECT().SetAdminStats(gomock.Any(), gomock.Any())

	got, err := s.sut.GetAdminStats(context.Background())
	s.Require().NoError(err)
	s.Zero(got.OccupancyRate)
	s.Len(got.RevenueSeries, 7)
}

func (s *StatsQueriesTestSuite) TestGetAdminStats_StoreFailureIsNotCached() {
	s.cache.EXPECT().GetAdminStats(gomock.Any()).Return(nil, false)
	s.store.EXPECT().RevenueTotal(gomock.Any(), gomock.Any()).Return(int64(0), errs.New("connection reset"))

	_, err := s.sut.GetAdminStats(context.Background())
	s.True(errs.Is(err, queries.ErrStatsUnavailable))
}

func (s *StatsQueriesTestSuite) TestGetUserStats() {
	userID := uuid.New()
	activity := queries.BillingView{ID: uuid.New(), UserID: userID, LotName: "Central", AmountPaidCents: 1000}

	s.cache.EXPECT().GetUserStats(gomock.Any(), userID).Return(nil, false)
	s.store.EXPECT().UserTotals(gomock.Any(), gomock.Any(), userID).Return(int64(3000), int64(2), nil)
	s.store.EXPECT().RecentActivities(gomock.Any(), gomock.Any(), userID, 5).Return([]queries.BillingView{activity}, nil)
	s.store.EXPECT().DailyUsage(gomock.Any(), gomock.Any(), userID, time.UTC, gomock.Any()).
		Return(map[string]float64{"2025-06-09": 1.5}, nil)
	s.cache.EXPECT().SetUserStats(gomock.Any(), userID, gomock.Any())

	got, err := s.sut.GetUserStats(context.Background(), userID)
	s.Require().NoError(err)

	s.Equal(int64(3000), got.TotalSpentCents)
	s.Equal(int64(2), got.TotalBookings)
	s.Equal([]queries.BillingView{activity}, got.RecentActivities)
	s.Require().Len(got.UsageSeries, 7)
	s.Equal(1.5, got.UsageSeries[5].Value)
}

func (s *StatsQueriesTestSuite) TestGetUserStats_CacheHit() {
	userID := uuid.New()
	cached := &queries.UserStatsView{TotalBookings: 9}
	s.cache.EXPECT().GetUserStats(gomock.Any(), userID).Return(cached, true)

	got, err := s.sut.GetUserStats(context.Background(), userID)
	s.Require().NoError(err)
	s.Same(cached, got)
}

func TestStatsQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(StatsQueriesTestSuite))
}
