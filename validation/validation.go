package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// hkMobileRegex matches Hong Kong mobile numbers: exactly 8 digits,
// leading digit 5, 6, 8 or 9.
var hkMobileRegex = regexp.MustCompile(`^[5689]\d{7}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("hkmobile", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return hkMobileRegex.MatchString(value)
	})

	return v
}

// Struct runs struct tag validation against s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Errors unwraps err into field-level validation errors, or nil.
func Errors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}

// HKMobile reports whether phone is a valid Hong Kong mobile number.
func HKMobile(phone string) bool {
	return hkMobileRegex.MatchString(phone)
}
