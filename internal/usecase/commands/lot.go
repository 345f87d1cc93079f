package commands

import (
	"context"
	"log/slog"

	reqdto "parking-app/internal/handler/dto/request"
	"parking-app/internal/infra"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=lot.go -destination=../../mock/commandsmock/lot.go -package=commandsmock

type LotCommands interface {
	// CreateLot stores the lot and all of its spots, available, in one transaction.
	CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (uuid.UUID, error)
	// DeleteLot fails with ErrLotOccupied while any spot is occupied.
	DeleteLot(ctx context.Context, lotID uuid.UUID) error
}

type lotCommandsImpl struct {
	uow   shared.UnitOfWork
	stats StatsInvalidator
}

func NewLotCommands(uow shared.UnitOfWork, stats StatsInvalidator) LotCommands {
	return &lotCommandsImpl{uow: uow, stats: stats}
}

func (l *lotCommandsImpl) CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (uuid.UUID, error) {
	newLot, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidLot)
	}

	var lotID uuid.UUID
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Lots().Create(ctx, tx.DB(), newLot)
		if err != nil {
			return err
		}

		created, err := tx.Spots().CreateForLot(ctx, tx.DB(), id, newLot.TotalSpots())
		if err != nil {
			return err
		}
		if created != int64(newLot.TotalSpots()) {
			return errs.New("spot count mismatch after lot creation")
		}

		lotID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	l.stats.InvalidateStats(ctx, uuid.Nil)
	slog.Info("parking lot created", "lot_id", lotID, "name", newLot.Name(), "total_spots", newLot.TotalSpots())
	return lotID, nil
}

func (l *lotCommandsImpl) DeleteLot(ctx context.Context, lotID uuid.UUID) error {
	var removedSpots int64
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The row lock makes concurrent bookings wait on their FOR SHARE read
		if _, err := tx.Lots().LockForUpdate(ctx, tx.DB(), lotID); err != nil {
			return err
		}

		occupied, err := tx.Spots().CountOccupied(ctx, tx.DB(), lotID)
		if err != nil {
			return err
		}
		if occupied > 0 {
			return ErrLotOccupied
		}

		if removedSpots, err = tx.Spots().DeleteByLot(ctx, tx.DB(), lotID); err != nil {
			return err
		}
		return tx.Lots().Delete(ctx, tx.DB(), lotID)
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrLotOccupied):
			return ErrLotOccupied
		case infra.IsKind(err, infra.KindNotFound):
			return ErrLotNotFound
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	l.stats.InvalidateStats(ctx, uuid.Nil)
	slog.Info("parking lot deleted", "lot_id", lotID, "spots_removed", removedSpots)
	return nil
}
