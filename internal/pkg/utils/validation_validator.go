package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("rut", validateRUT)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateRUT accepts the loose RUT formats donors actually type:
// digits with optional dots, a dash and a verifier digit or K. Empty is
// allowed; pair with required when the field is mandatory.
func validateRUT(fl validator.FieldLevel) bool {
	rut := fl.Field().String()
	if rut == "" {
		return true
	}
	return rutPattern.MatchString(rut)
}
