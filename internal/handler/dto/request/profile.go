package request

// UpdateProfileRequest is a partial update; nil fields keep their value.
type UpdateProfileRequest struct {
	Username     *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Mobile       *string `json:"mobile" binding:"omitempty,max=16"`
	VehicleRegNo *string `json:"vehicleRegNo" binding:"omitempty,vehiclereg"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	Pincode      *string `json:"pincode" binding:"omitempty,pincode"`
}
