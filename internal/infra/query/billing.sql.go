package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateBillingEntryParams struct {
	UserID          uuid.UUID
	LotID           uuid.UUID
	LotName         string
	SpotID          uuid.UUID
	BookedTime      time.Time
	ReleasedTime    time.Time
	DurationHours   float64
	AmountPaidCents int64
}

const createBillingEntry = `
INSERT INTO billing_history (user_id, lot_id, lot_name, spot_id, booked_time, released_time, duration_hours, amount_paid_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7::float8, $8)`

func (q *Queries) CreateBillingEntry(ctx context.Context, db DBTX, arg CreateBillingEntryParams) error {
	_, err := db.Exec(ctx, createBillingEntry,
		arg.UserID,
		arg.LotID,
		arg.LotName,
		arg.SpotID,
		arg.BookedTime,
		arg.ReleasedTime,
		arg.DurationHours,
		arg.AmountPaidCents,
	)
	return err
}

const billingColumns = `id, user_id, lot_id, lot_name, spot_id, booked_time, released_time, duration_hours::float8, amount_paid_cents`

const listBillingByUser = `SELECT ` + billingColumns + `
FROM billing_history
WHERE user_id = $1
ORDER BY released_time DESC
LIMIT $2`

// ListBillingByUser returns the newest releases first; limit <= 0 means all.
func (q *Queries) ListBillingByUser(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]BillingHistory, error) {
	return q.listBilling(ctx, db, listBillingByUser, userID, limit)
}

const listRecentBillingByUser = `SELECT ` + billingColumns + `
FROM billing_history
WHERE user_id = $1
ORDER BY booked_time DESC
LIMIT $2`

// ListRecentBillingByUser orders by booking time, newest first.
func (q *Queries) ListRecentBillingByUser(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]BillingHistory, error) {
	return q.listBilling(ctx, db, listRecentBillingByUser, userID, limit)
}

func (q *Queries) listBilling(ctx context.Context, db DBTX, sql string, userID uuid.UUID, limit int32) ([]BillingHistory, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := db.Query(ctx, sql, userID, lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BillingHistory
	for rows.Next() {
		var i BillingHistory
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.LotID,
			&i.LotName,
			&i.SpotID,
			&i.BookedTime,
			&i.ReleasedTime,
			&i.DurationHours,
			&i.AmountPaidCents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
