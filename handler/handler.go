package handler

import (
	"github.com/gofiber/fiber/v2"
	"tour-booking-api/exception"
	"tour-booking-api/util"
)

var errInvalidBody = exception.BadRequest("invalid request body")

func parseBody(ctx *fiber.Ctx, payload interface{}) error {
	if err := ctx.BodyParser(payload); err != nil {
		return errInvalidBody.Wrap(err)
	}
	return nil
}

func paramID(ctx *fiber.Ctx, key, name string) (uint, error) {
	return util.ParseID(ctx.Params(key), name)
}
