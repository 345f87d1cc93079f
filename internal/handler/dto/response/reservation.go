package response

import (
	"time"

	"parking-app/internal/usecase/commands"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	DisplayTimeLayout = "2006-01-02 15:04"
	OngoingLabel      = "Ongoing"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	SpotID            uuid.UUID `json:"spotId"`
	SpotNumber        int       `json:"spotNumber"`
	LotID             uuid.UUID `json:"lotId"`
	LotName           string    `json:"lotName"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
	Status            string    `json:"status"`
}

type ReserveResponse struct {
	ReservationID     uuid.UUID `json:"reservationId"`
	LotID             uuid.UUID `json:"lotId"`
	SpotID            uuid.UUID `json:"spotId"`
	SpotNumber        int       `json:"spotNumber"`
	StartTime         time.Time `json:"startTime"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
}

type ReleaseResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	LotID         uuid.UUID `json:"lotId"`
	LotName       string    `json:"lotName"`
	SpotID        uuid.UUID `json:"spotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
	AmountCents   int64     `json:"amountCents"`
}

// FromReservationView renders times in loc; an open reservation shows
// "Ongoing" as its end.
func FromReservationView(v *queries.ReservationView, loc *time.Location) *ReservationResponse {
	end := OngoingLabel
	if v.EndTime != nil {
		end = v.EndTime.In(loc).Format(DisplayTimeLayout)
	}
	return &ReservationResponse{
		ID:                v.ID,
		SpotID:            v.SpotID,
		SpotNumber:        v.SpotNumber,
		LotID:             v.LotID,
		LotName:           v.LotName,
		StartTime:         v.StartTime.In(loc).Format(DisplayTimeLayout),
		EndTime:           end,
		PricePerHourCents: v.PricePerHourCents,
		Status:            v.Status,
	}
}

func FromReservationViews(vs []*queries.ReservationView, loc *time.Location) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v, loc))
	}
	return out
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		ReservationID:     r.ReservationID,
		LotID:             r.LotID,
		SpotID:            r.SpotID,
		SpotNumber:        r.SpotNumber,
		StartTime:         r.StartTime,
		PricePerHourCents: r.PricePerHourCents,
	}
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		ReservationID: r.ReservationID,
		LotID:         r.LotID,
		LotName:       r.LotName,
		SpotID:        r.SpotID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DurationHours: r.DurationHours,
		AmountCents:   r.AmountCents,
	}
}
