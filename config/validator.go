package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"tour-booking-api/dto/req"
)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the request body
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// absent or null ids validate as empty so omitempty skips them
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if id, ok := field.Interface().(req.OptionalID); ok && id.Valid {
			return id.Value
		}
		return nil
	}, req.OptionalID{})

	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		rating := fl.Field().Int()
		return rating >= 1 && rating <= 5
	})
	return validate
}
