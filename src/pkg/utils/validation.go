package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TranslateValidationError renders the first failing rule as the
// human-readable message the API contract pins, e.g.
// "The name must not be greater than 10 characters."
func TranslateValidationError(err error) string {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return err.Error()
	}
	return fieldMessage(fieldErrors[0])
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("The %s is required", label)
	case "max":
		if isString {
			return fmt.Sprintf("The %s must not be greater than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s must not be greater than %s.", label, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The %s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", label, fe.Param())
	case "len":
		return fmt.Sprintf("The %s must be %s digits.", label, fe.Param())
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", label)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "notblank":
		return fmt.Sprintf("The %s must be a string.", label)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}

// fieldLabel turns a snake_case wire name into the wording used in messages
// ("id_number" -> "ID number", "home_address" -> "home address").
func fieldLabel(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "id" {
			words[i] = "ID"
		}
	}
	return strings.Join(words, " ")
}
