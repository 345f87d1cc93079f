package readstore

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/queries"
)

type LotReadQueries interface {
	ListLotsWithAvailability(ctx context.Context, db query.DBTX) ([]query.ListLotsWithAvailabilityRow, error)
}

type LotReadStore struct {
	queries LotReadQueries
}

func NewLotReadStore(queries LotReadQueries) *LotReadStore {
	return &LotReadStore{queries: queries}
}

func (r *LotReadStore) ListWithAvailability(ctx context.Context, db query.DBTX) ([]*queries.LotView, error) {
	rows, err := r.queries.ListLotsWithAvailability(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}

	views := make([]*queries.LotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.LotView{
			ID:                row.ID,
			Name:              row.Name,
			PricePerHourCents: row.PricePerHourCents,
			Address:           row.Address,
			PinCode:           row.PinCode,
			TotalSpots:        int(row.TotalSpots),
			AvailableSpots:    int(row.AvailableSpots),
			OccupiedSpots:     int(row.OccupiedSpots),
			CreatedAt:         row.CreatedAt,
		})
	}
	return views, nil
}
