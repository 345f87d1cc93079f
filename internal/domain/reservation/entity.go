package reservation

import (
	"errors"
	"time"

	"parking-app/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed    = errors.New("reservation is already closed")
	ErrNegativePrice    = errors.New("price per hour cannot be negative")
	ErrMissingReference = errors.New("reservation requires spot, lot and user")
)

type Services struct {
	Clock   clock.Clock
	Billing BillingCalculator
}

// Reservation ties a user to a spot from start until release. The hourly
// price is frozen when the reservation opens.
type Reservation struct {
	id           uuid.UUID
	spotID       uuid.UUID
	lotID        uuid.UUID
	userID       uuid.UUID
	pricePerHour Money
	startTime    time.Time
	endTime      *time.Time
}

func NewReservation(services *Services, spot SpotAssignment, userID uuid.UUID) (*Reservation, error) {
	if spot.SpotID == uuid.Nil || spot.LotID == uuid.Nil || userID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if spot.PricePerHour.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		spotID:       spot.SpotID,
		lotID:        spot.LotID,
		userID:       userID,
		pricePerHour: spot.PricePerHour,
		startTime:    services.Clock.Now(),
	}, nil
}

func ReconstructReservation(
	id, spotID, lotID, userID uuid.UUID,
	pricePerHour Money,
	startTime time.Time,
	endTime *time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		spotID:       spotID,
		lotID:        lotID,
		userID:       userID,
		pricePerHour: pricePerHour,
		startTime:    startTime,
		endTime:      endTime,
	}
}

// Release closes the reservation at the services clock and returns the bill.
func (r *Reservation) Release(services *Services) (Bill, error) {
	if r.endTime != nil {
		return Bill{}, ErrAlreadyClosed
	}

	now := services.Clock.Now()
	bill := services.Billing.Calculate(r.startTime, now, r.pricePerHour)
	r.endTime = &now
	return bill, nil
}

func (r *Reservation) Status() Status {
	if r.endTime == nil {
		return StatusOpen
	}
	return StatusClosed
}

func (r *Reservation) IsOpen() bool { return r.endTime == nil }

func (r *Reservation) AssignID(id uuid.UUID) { r.id = id }

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) SpotID() uuid.UUID    { return r.spotID }
func (r *Reservation) LotID() uuid.UUID     { return r.lotID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) PricePerHour() Money  { return r.pricePerHour }
func (r *Reservation) StartTime() time.Time { return r.startTime }
func (r *Reservation) EndTime() *time.Time  { return r.endTime }
