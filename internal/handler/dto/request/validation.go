package request

import (
	"parking-app/internal/domain/user"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain formats as binding tags. Safe to call
// more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("vehiclereg", func(fl validator.FieldLevel) bool {
		return user.IsVehicleRegNo(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return user.IsPincode(fl.Field().String())
	})
}
