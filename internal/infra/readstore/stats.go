package readstore

import (
	"context"
	"time"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadQueries interface {
	SumRevenue(ctx context.Context, db query.DBTX) (int64, error)
	CountSpots(ctx context.Context, db query.DBTX) (query.CountSpotsRow, error)
	CountNonAdminUsers(ctx context.Context, db query.DBTX) (int64, error)
	ListRecentBookings(ctx context.Context, db query.DBTX, limit int32) ([]query.RecentBookingRow, error)
	DailyRevenue(ctx context.Context, db query.DBTX, timeZone string, since time.Time) ([]query.DailyTotalRow, error)
	UserBillingTotals(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.UserBillingTotalsRow, error)
	ListRecentBillingByUser(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int32) ([]query.BillingHistory, error)
	DailyUsage(ctx context.Context, db query.DBTX, timeZone string, since time.Time, userID uuid.UUID) ([]query.DailyTotalRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
}

func NewStatsReadStore(queries StatsReadQueries) *StatsReadStore {
	return &StatsReadStore{queries: queries}
}

func (r *StatsReadStore) RevenueTotal(ctx context.Context, db query.DBTX) (int64, error) {
	n, err := r.queries.SumRevenue(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return n, nil
}

func (r *StatsReadStore) SpotCounts(ctx context.Context, db query.DBTX) (int64, int64, error) {
	row, err := r.queries.CountSpots(ctx, db)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count spots", err)
	}
	return row.Total, row.Occupied, nil
}

func (r *StatsReadStore) NonAdminUserCount(ctx context.Context, db query.DBTX) (int64, error) {
	n, err := r.queries.CountNonAdminUsers(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

func (r *StatsReadStore) RecentBookings(ctx context.Context, db query.DBTX, limit int) ([]queries.RecentBookingView, error) {
	rows, err := r.queries.ListRecentBookings(ctx, db, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}

	views := make([]queries.RecentBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.RecentBookingView{
			Username:        row.Username,
			LotName:         row.LotName,
			BookedTime:      row.BookedTime,
			AmountPaidCents: row.AmountPaidCents,
		})
	}
	return views, nil
}

func (r *StatsReadStore) DailyRevenue(ctx context.Context, db query.DBTX, loc *time.Location, since time.Time) (map[string]float64, error) {
	rows, err := r.queries.DailyRevenue(ctx, db, loc.String(), since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily revenue", err)
	}
	return toDailyMap(rows), nil
}

func (r *StatsReadStore) UserTotals(ctx context.Context, db query.DBTX, userID uuid.UUID) (int64, int64, error) {
	row, err := r.queries.UserBillingTotals(ctx, db, userID)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to total user billing", err)
	}
	return row.TotalSpentCents, row.TotalBookings, nil
}

func (r *StatsReadStore) RecentActivities(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int) ([]queries.BillingView, error) {
	rows, err := r.queries.ListRecentBillingByUser(ctx, db, userID, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent activities", err)
	}

	views := make([]queries.BillingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBillingView(row))
	}
	return views, nil
}

func (r *StatsReadStore) DailyUsage(ctx context.Context, db query.DBTX, userID uuid.UUID, loc *time.Location, since time.Time) (map[string]float64, error) {
	rows, err := r.queries.DailyUsage(ctx, db, loc.String(), since, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily usage", err)
	}
	return toDailyMap(rows), nil
}

func toDailyMap(rows []query.DailyTotalRow) map[string]float64 {
	m := make(map[string]float64, len(rows))
	for _, row := range rows {
		m[row.Day] = row.Total
	}
	return m
}
