package request

import (
	"parking-app/internal/domain/auth"
	"parking-app/internal/domain/user"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Mobile          string `json:"mobile" binding:"omitempty,max=16"`
	VehicleRegNo    string `json:"vehicleRegNo" binding:"omitempty,vehiclereg"`
	Address         string `json:"address" binding:"omitempty,max=255"`
	Pincode         string `json:"pincode" binding:"omitempty,pincode"`
}

func (r *RegisterRequest) ToDomain() (user.Registration, error) {
	profile, err := user.NewProfile(r.Email, r.Mobile, r.VehicleRegNo, r.Address, r.Pincode)
	if err != nil {
		return user.Registration{}, err
	}
	return user.NewRegistration(r.Username, r.Password, r.ConfirmPassword, profile)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Username, r.Password)
}
