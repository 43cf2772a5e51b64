package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// NewValidator builds the shared validator. Field names in error messages
// come from the `label` tag so messages read "The home address is required"
// rather than "HomeAddress".
func NewValidator(v *viper.Viper) *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})

	// notblank rejects values that are present but whitespace-only, which
	// the API reports as a type error on the parameter.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return validate
}
