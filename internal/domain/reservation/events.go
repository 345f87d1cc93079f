package reservation

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOpened EventType = "reservation.opened"
	EventClosed EventType = "reservation.closed"
)

type Event struct {
	Type          EventType `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	UserID        uuid.UUID `json:"user_id"`
	LotID         uuid.UUID `json:"lot_id"`
	SpotID        uuid.UUID `json:"spot_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	DurationHours float64   `json:"duration_hours,omitempty"`
	AmountCents   int64     `json:"amount_cents,omitempty"`
}

func OpenedEvent(r *Reservation) Event {
	return Event{
		Type:          EventOpened,
		ReservationID: r.ID(),
		UserID:        r.UserID(),
		LotID:         r.LotID(),
		SpotID:        r.SpotID(),
		OccurredAt:    r.StartTime(),
	}
}

func ClosedEvent(r *Reservation, bill Bill) Event {
	return Event{
		Type:          EventClosed,
		ReservationID: r.ID(),
		UserID:        r.UserID(),
		LotID:         r.LotID(),
		SpotID:        r.SpotID(),
		OccurredAt:    bill.End,
		DurationHours: bill.DurationHours,
		AmountCents:   bill.Amount.Cents(),
	}
}
