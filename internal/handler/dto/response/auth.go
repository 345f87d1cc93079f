package response

import (
	"time"

	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	VehicleRegNo string    `json:"vehicleRegNo"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromUserView(v))
	}
	return out
}
