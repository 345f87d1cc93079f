package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	SpotID            uuid.UUID
	UserID            uuid.UUID
	LotID             uuid.UUID
	StartTime         time.Time
	PricePerHourCents int64
}

const createReservation = `
INSERT INTO reservations (spot_id, user_id, lot_id, start_time, price_per_hour_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createReservation,
		arg.SpotID,
		arg.UserID,
		arg.LotID,
		arg.StartTime,
		arg.PricePerHourCents,
	).Scan(&id)
	return id, err
}

const reservationSelect = `
SELECT r.id, r.spot_id, s.spot_number, r.lot_id, l.name, r.user_id, r.start_time, r.end_time, r.price_per_hour_cents
FROM reservations r
JOIN parking_spots s ON s.id = r.spot_id
JOIN parking_lots l ON l.id = r.lot_id`

const lockOpenReservation = reservationSelect + `
WHERE r.id = $1 AND r.user_id = $2 AND r.end_time IS NULL
FOR UPDATE OF r`

// LockOpenReservation matches only an open reservation owned by userID.
func (q *Queries) LockOpenReservation(ctx context.Context, db DBTX, id, userID uuid.UUID) (ReservationRow, error) {
	return scanReservation(db.QueryRow(ctx, lockOpenReservation, id, userID))
}

const findReservationByID = reservationSelect + `
WHERE r.id = $1 AND r.user_id = $2`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id, userID uuid.UUID) (ReservationRow, error) {
	return scanReservation(db.QueryRow(ctx, findReservationByID, id, userID))
}

const listReservationsByUser = reservationSelect + `
WHERE r.user_id = $1
ORDER BY r.start_time DESC`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ReservationRow, error) {
	rows, err := db.Query(ctx, listReservationsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReservationRow
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const closeReservation = `UPDATE reservations SET end_time = $2 WHERE id = $1 AND end_time IS NULL`

func (q *Queries) CloseReservation(ctx context.Context, db DBTX, id uuid.UUID, endTime time.Time) (int64, error) {
	tag, err := db.Exec(ctx, closeReservation, id, endTime)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CreateBookingAuditParams struct {
	UserID   uuid.UUID
	LotID    uuid.UUID
	SpotID   uuid.UUID
	BookedOn time.Time
}

const createBookingAudit = `
INSERT INTO booking_audit (user_id, lot_id, spot_id, booked_on)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateBookingAudit(ctx context.Context, db DBTX, arg CreateBookingAuditParams) error {
	_, err := db.Exec(ctx, createBookingAudit, arg.UserID, arg.LotID, arg.SpotID, arg.BookedOn)
	return err
}

func scanReservation(row rowScanner) (ReservationRow, error) {
	var i ReservationRow
	err := row.Scan(
		&i.ID,
		&i.SpotID,
		&i.SpotNumber,
		&i.LotID,
		&i.LotName,
		&i.UserID,
		&i.StartTime,
		&i.EndTime,
		&i.PricePerHourCents,
	)
	return i, err
}
