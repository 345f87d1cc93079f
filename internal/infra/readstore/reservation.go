package readstore

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/infra/repository"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	FindReservationByID(ctx context.Context, db query.DBTX, id, userID uuid.UUID) (query.ReservationRow, error)
	ListReservationsByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.ReservationRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
}

func NewReservationReadStore(queries ReservationReadQueries) *ReservationReadStore {
	return &ReservationReadStore{queries: queries}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, db query.DBTX, id, userID uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationByID(ctx, db, id, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationView(row))
	}
	return views, nil
}

func toReservationView(row query.ReservationRow) *queries.ReservationView {
	res := repository.ToDomainReservation(row)
	return &queries.ReservationView{
		ID:                res.ID(),
		SpotID:            res.SpotID(),
		SpotNumber:        int(row.SpotNumber),
		LotID:             res.LotID(),
		LotName:           row.LotName,
		StartTime:         res.StartTime(),
		EndTime:           res.EndTime(),
		PricePerHourCents: res.PricePerHour().Cents(),
		Status:            res.Status().String(),
	}
}
