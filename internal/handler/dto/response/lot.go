package response

import (
	"time"

	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LotResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
	Address           string    `json:"address"`
	PinCode           string    `json:"pinCode"`
	TotalSpots        int       `json:"totalSpots"`
	AvailableSpots    int       `json:"availableSpots"`
	OccupiedSpots     int       `json:"occupiedSpots"`
	CreatedAt         time.Time `json:"createdAt"`
}

type CreateLotResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromLotViews(vs []*queries.LotView) []*LotResponse {
	out := make([]*LotResponse, 0, len(vs))
	for _, v := range vs {
		var res LotResponse
		_ = copier.Copy(&res, v)
		out = append(out, &res)
	}
	return out
}
