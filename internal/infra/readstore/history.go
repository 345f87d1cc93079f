package readstore

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryReadQueries interface {
	ListBillingByUser(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int32) ([]query.BillingHistory, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
}

func NewHistoryReadStore(queries HistoryReadQueries) *HistoryReadStore {
	return &HistoryReadStore{queries: queries}
}

// ListByUser returns billing rows by release time, newest first. A limit of
// zero or less returns everything.
func (r *HistoryReadStore) ListByUser(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int) ([]*queries.BillingView, error) {
	rows, err := r.queries.ListBillingByUser(ctx, db, userID, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list billing history", err)
	}

	views := make([]*queries.BillingView, 0, len(rows))
	for _, row := range rows {
		v := toBillingView(row)
		views = append(views, &v)
	}
	return views, nil
}

func toBillingView(row query.BillingHistory) queries.BillingView {
	return queries.BillingView{
		ID:              row.ID,
		UserID:          row.UserID,
		LotID:           row.LotID,
		LotName:         row.LotName,
		SpotID:          row.SpotID,
		BookedTime:      row.BookedTime,
		ReleasedTime:    row.ReleasedTime,
		DurationHours:   row.DurationHours,
		AmountPaidCents: row.AmountPaidCents,
	}
}

func clampLimit(limit int) int32 {
	const maxLimit = 1 << 20
	if limit <= 0 {
		return 0
	}
	if limit > maxLimit {
		return maxLimit
	}
	return int32(limit) // #nosec G115 -- clamped above
}
