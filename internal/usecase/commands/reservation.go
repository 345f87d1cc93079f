package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/infra"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../mock/commandsmock/reservation.go -package=commandsmock

type ReserveResult struct {
	ReservationID     uuid.UUID
	LotID             uuid.UUID
	SpotID            uuid.UUID
	SpotNumber        int
	StartTime         time.Time
	PricePerHourCents int64
}

type ReleaseResult struct {
	ReservationID uuid.UUID
	LotID         uuid.UUID
	LotName       string
	SpotID        uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	AmountCents   int64
}

type ReservationCommands interface {
	// ReserveSpot books the lowest-numbered available spot of the lot.
	ReserveSpot(ctx context.Context, lotID, userID uuid.UUID) (*ReserveResult, error)
	// ReleaseReservation closes an open reservation owned by userID and bills it.
	ReleaseReservation(ctx context.Context, reservationID, userID uuid.UUID) (*ReleaseResult, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	factory   *reservation.Factory
	publisher EventPublisher
	stats     StatsInvalidator
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	publisher EventPublisher,
	stats StatsInvalidator,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		factory:   factory,
		publisher: publisher,
		stats:     stats,
	}
}

func (r *reservationCommandsImpl) ReserveSpot(ctx context.Context, lotID, userID uuid.UUID) (*ReserveResult, error) {
	var (
		opened *reservation.Reservation
		spot   *shared.SpotSnapshot
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lotSnap, err := tx.Lots().FindForShare(ctx, tx.DB(), lotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLotNotFound
			}
			return err
		}

		spot, err = tx.Spots().PickAvailable(ctx, tx.DB(), lotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoAvailableSpot
			}
			return err
		}

		if err := tx.Spots().Occupy(ctx, tx.DB(), spot.ID); err != nil {
			return err
		}

		opened, err = r.factory.Open(reservation.SpotAssignment{
			SpotID:       spot.ID,
			SpotNumber:   spot.SpotNumber,
			LotID:        lotSnap.ID,
			PricePerHour: reservation.NewMoney(lotSnap.PricePerHourCents),
		}, userID)
		if err != nil {
			return err
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), opened)
		if err != nil {
			return err
		}
		opened.AssignID(id)

		return tx.Ledger().AppendBooking(ctx, tx.DB(), opened)
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrLotNotFound):
			return nil, ErrLotNotFound
		case errs.Is(err, ErrNoAvailableSpot):
			return nil, ErrNoAvailableSpot
		case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrReservationConflict)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	r.afterCommit(ctx, reservation.OpenedEvent(opened))

	return &ReserveResult{
		ReservationID:     opened.ID(),
		LotID:             opened.LotID(),
		SpotID:            opened.SpotID(),
		SpotNumber:        spot.SpotNumber,
		StartTime:         opened.StartTime(),
		PricePerHourCents: opened.PricePerHour().Cents(),
	}, nil
}

func (r *reservationCommandsImpl) ReleaseReservation(ctx context.Context, reservationID, userID uuid.UUID) (*ReleaseResult, error) {
	var (
		open *shared.OpenReservation
		bill reservation.Bill
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		open, err = tx.Reservations().LockOpen(ctx, tx.DB(), reservationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		bill, err = r.factory.Release(open.Reservation)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Close(ctx, tx.DB(), open.Reservation); err != nil {
			return err
		}

		if err := tx.Ledger().AppendBilling(ctx, tx.DB(), shared.BillingEntry{
			Reservation: open.Reservation,
			LotName:     open.LotName,
			Bill:        bill,
		}); err != nil {
			return err
		}

		return tx.Spots().Free(ctx, tx.DB(), open.Reservation.SpotID())
	})
	if err != nil {
		switch {
		case errs.IsAny(err, ErrReservationNotFound, reservation.ErrAlreadyClosed):
			return nil, ErrReservationNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	res := open.Reservation
	r.afterCommit(ctx, reservation.ClosedEvent(res, bill))

	return &ReleaseResult{
		ReservationID: res.ID(),
		LotID:         res.LotID(),
		LotName:       open.LotName,
		SpotID:        res.SpotID(),
		StartTime:     res.StartTime(),
		EndTime:       bill.End,
		DurationHours: bill.DurationHours,
		AmountCents:   bill.Amount.Cents(),
	}, nil
}

func (r *reservationCommandsImpl) afterCommit(ctx context.Context, ev reservation.Event) {
	r.stats.InvalidateStats(ctx, ev.UserID)

	if err := r.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish reservation event",
			"type", string(ev.Type),
			"reservation_id", ev.ReservationID,
			"error", err.Error())
	}
}
