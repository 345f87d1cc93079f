package shared

import (
	"parking-app/internal/domain/reservation"

	"github.com/google/uuid"
)

type LotSnapshot struct {
	ID                uuid.UUID
	Name              string
	PricePerHourCents int64
	TotalSpots        int
}

type SpotSnapshot struct {
	ID         uuid.UUID
	LotID      uuid.UUID
	SpotNumber int
}

// OpenReservation is a locked open reservation together with the lot name
// that the billing row snapshots.
type OpenReservation struct {
	Reservation *reservation.Reservation
	LotName     string
	SpotNumber  int
}

type BillingEntry struct {
	Reservation *reservation.Reservation
	LotName     string
	Bill        reservation.Bill
}
