package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// RegisterCustomValidations registers ledger-specific validations on gin's
// binding engine. Call once at startup before serving requests.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRegex.MatchString(fl.Field().String())
	})
}
