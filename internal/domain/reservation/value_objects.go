package reservation

import (
	"github.com/google/uuid"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// SpotAssignment is the spot picked for a new reservation, with the lot's
// hourly price at the moment of booking.
type SpotAssignment struct {
	SpotID       uuid.UUID
	SpotNumber   int
	LotID        uuid.UUID
	PricePerHour Money
}
