package exception

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const RatingMessage = "rating must be between 1 and 5"

// FromValidator turns the first failed rule into a 400 the client can read.
func FromValidator(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return BadRequest("invalid request body").Wrap(err)
	}
	return BadRequest(describe(validationErrors[0])).Wrap(err)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "rating":
		return RatingMessage
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
