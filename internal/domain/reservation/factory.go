package reservation

import (
	"github.com/google/uuid"
)

type Factory struct {
	services *Services
}

func NewFactory(services *Services) *Factory {
	return &Factory{services: services}
}

func (f *Factory) Open(spot SpotAssignment, userID uuid.UUID) (*Reservation, error) {
	return NewReservation(f.services, spot, userID)
}

func (f *Factory) Release(r *Reservation) (Bill, error) {
	return r.Release(f.services)
}
