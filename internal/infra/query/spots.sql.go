package query

import (
	"context"

	"github.com/google/uuid"
)

const createSpotsForLot = `
INSERT INTO parking_spots (lot_id, spot_number, status)
SELECT $1, g, 'A' FROM generate_series(1, $2::int) AS g`

func (q *Queries) CreateSpotsForLot(ctx context.Context, db DBTX, lotID uuid.UUID, count int32) (int64, error) {
	tag, err := db.Exec(ctx, createSpotsForLot, lotID, count)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type PickAvailableSpotRow struct {
	ID         uuid.UUID
	SpotNumber int32
}

// Rows locked by a concurrent booking are skipped rather than waited on, so
// two requests racing for the same lot land on different spots.
const pickAvailableSpot = `
SELECT id, spot_number FROM parking_spots
WHERE lot_id = $1 AND status = 'A'
ORDER BY spot_number
LIMIT 1
FOR UPDATE SKIP LOCKED`

func (q *Queries) PickAvailableSpot(ctx context.Context, db DBTX, lotID uuid.UUID) (PickAvailableSpotRow, error) {
	var i PickAvailableSpotRow
	err := db.QueryRow(ctx, pickAvailableSpot, lotID).Scan(&i.ID, &i.SpotNumber)
	return i, err
}

const occupySpot = `UPDATE parking_spots SET status = 'O' WHERE id = $1 AND status = 'A'`

func (q *Queries) OccupySpot(ctx context.Context, db DBTX, spotID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, occupySpot, spotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const freeSpot = `UPDATE parking_spots SET status = 'A' WHERE id = $1 AND status = 'O'`

func (q *Queries) FreeSpot(ctx context.Context, db DBTX, spotID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, freeSpot, spotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countOccupiedSpotsByLot = `SELECT count(*) FROM parking_spots WHERE lot_id = $1 AND status = 'O'`

func (q *Queries) CountOccupiedSpotsByLot(ctx context.Context, db DBTX, lotID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countOccupiedSpotsByLot, lotID).Scan(&n)
	return n, err
}

const deleteSpotsByLot = `DELETE FROM parking_spots WHERE lot_id = $1`

func (q *Queries) DeleteSpotsByLot(ctx context.Context, db DBTX, lotID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteSpotsByLot, lotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CountSpotsRow struct {
	Total    int64
	Occupied int64
}

const countSpots = `SELECT count(*), count(*) FILTER (WHERE status = 'O') FROM parking_spots`

func (q *Queries) CountSpots(ctx context.Context, db DBTX) (CountSpotsRow, error) {
	var i CountSpotsRow
	err := db.QueryRow(ctx, countSpots).Scan(&i.Total, &i.Occupied)
	return i, err
}
