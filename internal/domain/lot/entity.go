package lot

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("lot name cannot be empty")
	ErrNameTooLong     = errors.New("lot name is too long (max 100 characters)")
	ErrInvalidPrice    = errors.New("price per hour must be greater than zero")
	ErrInvalidCapacity = errors.New("total spots must be between 1 and 1000")
	ErrInvalidPinCode  = errors.New("pin code must be 6 digits")
)

const (
	MaxNameLength = 100
	MaxSpots      = 1000
)

// Lot is a parking facility with a fixed number of spots, all created
// together with the lot.
type Lot struct {
	id                uuid.UUID
	name              string
	pricePerHourCents int64
	address           string
	pinCode           string
	totalSpots        int
}

func NewLot(name string, pricePerHourCents int64, address, pinCode string, totalSpots int) (*Lot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if pricePerHourCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if totalSpots <= 0 || totalSpots > MaxSpots {
		return nil, ErrInvalidCapacity
	}
	pinCode = strings.TrimSpace(pinCode)
	if pinCode != "" && !IsPinCode(pinCode) {
		return nil, ErrInvalidPinCode
	}

	return &Lot{
		name:              name,
		pricePerHourCents: pricePerHourCents,
		address:           strings.TrimSpace(address),
		pinCode:           pinCode,
		totalSpots:        totalSpots,
	}, nil
}

func (l *Lot) AssignID(id uuid.UUID) { l.id = id }

func (l *Lot) ID() uuid.UUID            { return l.id }
func (l *Lot) Name() string             { return l.name }
func (l *Lot) PricePerHourCents() int64 { return l.pricePerHourCents }
func (l *Lot) Address() string          { return l.address }
func (l *Lot) PinCode() string          { return l.pinCode }
func (l *Lot) TotalSpots() int          { return l.totalSpots }

// IsPinCode accepts six-digit postal codes.
func IsPinCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
