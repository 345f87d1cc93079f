package repository

import (
	"context"

	"parking-app/internal/domain/lot"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotWriteQueries interface {
	CreateLot(ctx context.Context, db query.DBTX, arg query.CreateLotParams) (uuid.UUID, error)
	FindLotForShare(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ParkingLots, error)
	LockLot(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ParkingLots, error)
	DeleteLot(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type LotRepository struct {
	queries LotWriteQueries
}

func NewLotRepository(queries LotWriteQueries) *LotRepository {
	return &LotRepository{queries: queries}
}

func (r *LotRepository) Create(ctx context.Context, tx query.DBTX, l *lot.Lot) (uuid.UUID, error) {
	id, err := r.queries.CreateLot(ctx, tx, query.CreateLotParams{
		Name:              l.Name(),
		PricePerHourCents: l.PricePerHourCents(),
		Address:           l.Address(),
		PinCode:           l.PinCode(),
		TotalSpots:        int32(l.TotalSpots()), // #nosec G115 -- bounded by lot.MaxSpots
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lot", err)
	}
	l.AssignID(id)
	return id, nil
}

func (r *LotRepository) FindForShare(ctx context.Context, tx query.DBTX, id uuid.UUID) (*shared.LotSnapshot, error) {
	row, err := r.queries.FindLotForShare(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lot", err)
	}
	return toLotSnapshot(row), nil
}

func (r *LotRepository) LockForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*shared.LotSnapshot, error) {
	row, err := r.queries.LockLot(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock lot", err)
	}
	return toLotSnapshot(row), nil
}

func (r *LotRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteLot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func toLotSnapshot(row query.ParkingLots) *shared.LotSnapshot {
	return &shared.LotSnapshot{
		ID:                row.ID,
		Name:              row.Name,
		PricePerHourCents: row.PricePerHourCents,
		TotalSpots:        int(row.TotalSpots),
	}
}
