package repository

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotWriteQueries interface {
	CreateSpotsForLot(ctx context.Context, db query.DBTX, lotID uuid.UUID, count int32) (int64, error)
	PickAvailableSpot(ctx context.Context, db query.DBTX, lotID uuid.UUID) (query.PickAvailableSpotRow, error)
	OccupySpot(ctx context.Context, db query.DBTX, spotID uuid.UUID) (int64, error)
	FreeSpot(ctx context.Context, db query.DBTX, spotID uuid.UUID) (int64, error)
	CountOccupiedSpotsByLot(ctx context.Context, db query.DBTX, lotID uuid.UUID) (int64, error)
	DeleteSpotsByLot(ctx context.Context, db query.DBTX, lotID uuid.UUID) (int64, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
}

func NewSpotRepository(queries SpotWriteQueries) *SpotRepository {
	return &SpotRepository{queries: queries}
}

func (r *SpotRepository) CreateForLot(ctx context.Context, tx query.DBTX, lotID uuid.UUID, count int) (int64, error) {
	n, err := r.queries.CreateSpotsForLot(ctx, tx, lotID, int32(count)) // #nosec G115 -- bounded by lot.MaxSpots
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create spots", err)
	}
	return n, nil
}

// PickAvailable returns a NOT_FOUND error when the lot is full.
func (r *SpotRepository) PickAvailable(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (*shared.SpotSnapshot, error) {
	row, err := r.queries.PickAvailableSpot(ctx, tx, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to pick available spot", err)
	}
	return &shared.SpotSnapshot{
		ID:         row.ID,
		LotID:      lotID,
		SpotNumber: int(row.SpotNumber),
	}, nil
}

// Occupy flips A to O; a spot that is no longer available is a CONFLICT.
func (r *SpotRepository) Occupy(ctx context.Context, tx query.DBTX, spotID uuid.UUID) error {
	affected, err := r.queries.OccupySpot(ctx, tx, spotID)
	if err != nil {
		return infra.WrapRepoErr("failed to occupy spot", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr("spot is no longer available", nil, infra.KindConflict)
	}
	return nil
}

func (r *SpotRepository) Free(ctx context.Context, tx query.DBTX, spotID uuid.UUID) error {
	affected, err := r.queries.FreeSpot(ctx, tx, spotID)
	if err != nil {
		return infra.WrapRepoErr("failed to free spot", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr("spot is not occupied", nil, infra.KindConflict)
	}
	return nil
}

func (r *SpotRepository) CountOccupied(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (int64, error) {
	n, err := r.queries.CountOccupiedSpotsByLot(ctx, tx, lotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count occupied spots", err)
	}
	return n, nil
}

func (r *SpotRepository) DeleteByLot(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteSpotsByLot(ctx, tx, lotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete spots", err)
	}
	return n, nil
}
