package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/res"
	"tour-booking-api/exception"
)

// ErrorHandler renders every error returned by a handler as the failure envelope.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := classify(err)

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		return c.Status(code).JSON(res.Fail(message))
	}
}

func classify(err error) (int, string) {
	if appErr := exception.As(err); appErr != nil {
		return appErr.StatusCode(), appErr.Message
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		appErr := exception.FromValidator(err)
		return appErr.StatusCode(), appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, "internal server error"
		}
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, "internal server error"
}
