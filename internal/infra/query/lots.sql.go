package query

import (
	"context"

	"github.com/google/uuid"
)

const lotColumns = `id, name, price_per_hour_cents, address, pin_code, total_spots, created_at`

type CreateLotParams struct {
	Name              string
	PricePerHourCents int64
	Address           string
	PinCode           string
	TotalSpots        int32
}

const createLot = `
INSERT INTO parking_lots (name, price_per_hour_cents, address, pin_code, total_spots)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (q *Queries) CreateLot(ctx context.Context, db DBTX, arg CreateLotParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createLot,
		arg.Name,
		arg.PricePerHourCents,
		arg.Address,
		arg.PinCode,
		arg.TotalSpots,
	).Scan(&id)
	return id, err
}

const findLotForShare = `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1 FOR SHARE`

// FindLotForShare blocks concurrent deletion of the lot until the caller's
// transaction ends.
func (q *Queries) FindLotForShare(ctx context.Context, db DBTX, id uuid.UUID) (ParkingLots, error) {
	return scanLot(db.QueryRow(ctx, findLotForShare, id))
}

const lockLot = `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1 FOR UPDATE`

func (q *Queries) LockLot(ctx context.Context, db DBTX, id uuid.UUID) (ParkingLots, error) {
	return scanLot(db.QueryRow(ctx, lockLot, id))
}

const deleteLot = `DELETE FROM parking_lots WHERE id = $1`

func (q *Queries) DeleteLot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteLot, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListLotsWithAvailabilityRow struct {
	ParkingLots
	AvailableSpots int64
	OccupiedSpots  int64
}

const listLotsWithAvailability = `
SELECT l.id, l.name, l.price_per_hour_cents, l.address, l.pin_code, l.total_spots, l.created_at,
       count(s.id) FILTER (WHERE s.status = 'A') AS available_spots,
       count(s.id) FILTER (WHERE s.status = 'O') AS occupied_spots
FROM parking_lots l
LEFT JOIN parking_spots s ON s.lot_id = l.id
GROUP BY l.id
ORDER BY l.created_at, l.name`

func (q *Queries) ListLotsWithAvailability(ctx context.Context, db DBTX) ([]ListLotsWithAvailabilityRow, error) {
	rows, err := db.Query(ctx, listLotsWithAvailability)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListLotsWithAvailabilityRow
	for rows.Next() {
		var i ListLotsWithAvailabilityRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.PricePerHourCents,
			&i.Address,
			&i.PinCode,
			&i.TotalSpots,
			&i.CreatedAt,
			&i.AvailableSpots,
			&i.OccupiedSpots,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func scanLot(row rowScanner) (ParkingLots, error) {
	var i ParkingLots
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PricePerHourCents,
		&i.Address,
		&i.PinCode,
		&i.TotalSpots,
		&i.CreatedAt,
	)
	return i, err
}
