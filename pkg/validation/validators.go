package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const isoDateLayout = "2006-01-02"

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("iso_date", ISODate)
}

// ISODate accepts calendar dates in YYYY-MM-DD form.
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	_, err := time.Parse(isoDateLayout, val)
	return err == nil
}
