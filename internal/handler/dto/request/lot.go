package request

import (
	"parking-app/internal/domain/lot"
)

type CreateLotRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	PricePerHourCents int64  `json:"pricePerHourCents" binding:"required,gt=0"`
	Address           string `json:"address" binding:"max=255"`
	PinCode           string `json:"pinCode" binding:"omitempty,pincode"`
	TotalSpots        int    `json:"totalSpots" binding:"required,gt=0,lte=1000"`
}

func (r *CreateLotRequest) ToDomain() (*lot.Lot, error) {
	return lot.NewLot(r.Name, r.PricePerHourCents, r.Address, r.PinCode, r.TotalSpots)
}
