package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const sumRevenue = `SELECT COALESCE(sum(amount_paid_cents), 0)::bigint FROM billing_history`

func (q *Queries) SumRevenue(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, sumRevenue).Scan(&n)
	return n, err
}

type UserBillingTotalsRow struct {
	TotalSpentCents int64
	TotalBookings   int64
}

const userBillingTotals = `
SELECT COALESCE(sum(amount_paid_cents), 0)::bigint, count(*)
FROM billing_history
WHERE user_id = $1`

func (q *Queries) UserBillingTotals(ctx context.Context, db DBTX, userID uuid.UUID) (UserBillingTotalsRow, error) {
	var i UserBillingTotalsRow
	err := db.QueryRow(ctx, userBillingTotals, userID).Scan(&i.TotalSpentCents, &i.TotalBookings)
	return i, err
}

type RecentBookingRow struct {
	Username        string
	LotName         string
	BookedTime      time.Time
	AmountPaidCents int64
}

const listRecentBookings = `
SELECT COALESCE(u.username, ''), h.lot_name, h.booked_time, h.amount_paid_cents
FROM billing_history h
LEFT JOIN users u ON u.id = h.user_id
ORDER BY h.booked_time DESC
LIMIT $1`

func (q *Queries) ListRecentBookings(ctx context.Context, db DBTX, limit int32) ([]RecentBookingRow, error) {
	rows, err := db.Query(ctx, listRecentBookings, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RecentBookingRow
	for rows.Next() {
		var i RecentBookingRow
		if err := rows.Scan(&i.Username, &i.LotName, &i.BookedTime, &i.AmountPaidCents); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type DailyTotalRow struct {
	Day   string
	Total float64
}

// Days are calendar dates of released_time in the given IANA zone.
const dailyRevenue = `
SELECT to_char((released_time AT TIME ZONE $1)::date, 'YYYY-MM-DD') AS day,
       sum(amount_paid_cents)::float8
FROM billing_history
WHERE released_time >= $2
GROUP BY day`

func (q *Queries) DailyRevenue(ctx context.Context, db DBTX, timeZone string, since time.Time) ([]DailyTotalRow, error) {
	return q.dailyTotals(ctx, db, dailyRevenue, timeZone, since)
}

const dailyUsage = `
SELECT to_char((released_time AT TIME ZONE $1)::date, 'YYYY-MM-DD') AS day,
       sum(duration_hours)::float8
FROM billing_history
WHERE released_time >= $2 AND user_id = $3
GROUP BY day`

func (q *Queries) DailyUsage(ctx context.Context, db DBTX, timeZone string, since time.Time, userID uuid.UUID) ([]DailyTotalRow, error) {
	return q.dailyTotals(ctx, db, dailyUsage, timeZone, since, userID)
}

func (q *Queries) dailyTotals(ctx context.Context, db DBTX, sql, timeZone string, since time.Time, extra ...any) ([]DailyTotalRow, error) {
	args := append([]any{timeZone, since}, extra...)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DailyTotalRow
	for rows.Next() {
		var i DailyTotalRow
		if err := rows.Scan(&i.Day, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
