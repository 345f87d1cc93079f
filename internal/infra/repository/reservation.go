package repository

import (
	"context"
	"time"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/pgconv"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (uuid.UUID, error)
	LockOpenReservation(ctx context.Context, db query.DBTX, id, userID uuid.UUID) (query.ReservationRow, error)
	CloseReservation(ctx context.Context, db query.DBTX, id uuid.UUID, endTime time.Time) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, query.CreateReservationParams{
		SpotID:            res.SpotID(),
		UserID:            res.UserID(),
		LotID:             res.LotID(),
		StartTime:         res.StartTime(),
		PricePerHourCents: res.PricePerHour().Cents(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// LockOpen locks the caller's open reservation. Closed or foreign
// reservations are reported as NOT_FOUND.
func (r *ReservationRepository) LockOpen(ctx context.Context, tx query.DBTX, id, userID uuid.UUID) (*shared.OpenReservation, error) {
	row, err := r.queries.LockOpenReservation(ctx, tx, id, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock open reservation", err)
	}
	return &shared.OpenReservation{
		Reservation: ToDomainReservation(row),
		LotName:     row.LotName,
		SpotNumber:  int(row.SpotNumber),
	}, nil
}

func (r *ReservationRepository) Close(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	end := res.EndTime()
	if end == nil {
		return infra.WrapRepoErr("reservation has no end time", nil, infra.KindDBFailure)
	}

	affected, err := r.queries.CloseReservation(ctx, tx, res.ID(), *end)
	if err != nil {
		return infra.WrapRepoErr("failed to close reservation", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr("reservation already closed", nil, infra.KindConflict)
	}
	return nil
}

func ToDomainReservation(row query.ReservationRow) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.SpotID,
		row.LotID,
		row.UserID,
		reservation.NewMoney(row.PricePerHourCents),
		row.StartTime,
		pgconv.TimePtrFromPgtype(row.EndTime),
	)
}
