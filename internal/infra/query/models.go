package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        string
	Mobile       string
	VehicleRegNo string
	Address      string
	Pincode      string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ParkingLots struct {
	ID                uuid.UUID
	Name              string
	PricePerHourCents int64
	Address           string
	PinCode           string
	TotalSpots        int32
	CreatedAt         time.Time
}

type BillingHistory struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	LotID           uuid.UUID
	LotName         string
	SpotID          uuid.UUID
	BookedTime      time.Time
	ReleasedTime    time.Time
	DurationHours   float64
	AmountPaidCents int64
}

type ReservationRow struct {
	ID                uuid.UUID
	SpotID            uuid.UUID
	SpotNumber        int32
	LotID             uuid.UUID
	LotName           string
	UserID            uuid.UUID
	StartTime         time.Time
	EndTime           pgtype.Timestamptz
	PricePerHourCents int64
}
