package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/exception"
	"tour-booking-api/usecase"
)

type AvailableHandler struct {
	usecase.AvailableUsecase
	*logrus.Logger
}

func NewAvailableHandler(availableUsecase usecase.AvailableUsecase, logger *logrus.Logger) *AvailableHandler {
	return &AvailableHandler{AvailableUsecase: availableUsecase, Logger: logger}
}

func (handler *AvailableHandler) GetAvailables(ctx *fiber.Ctx) error {
	availables, err := handler.AvailableUsecase.GetAvailables(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(availables))
}

func (handler *AvailableHandler) GetAvailableByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "available id")
	if err != nil {
		return err
	}

	available, err := handler.AvailableUsecase.GetAvailableByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(available))
}

func (handler *AvailableHandler) CreateAvailable(ctx *fiber.Ctx) error {
	payload := new(req.CreateAvailableRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	available, err := handler.AvailableUsecase.CreateAvailable(ctx.UserContext(), payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(available))
}

// UpdateAvailable serves both PUT /put/:id and PUT /put with the id in the body.
func (handler *AvailableHandler) UpdateAvailable(ctx *fiber.Ctx) error {
	payload := new(req.UpdateAvailableRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	var id uint
	if ctx.Params("id") != "" {
		parsed, err := paramID(ctx, "id", "available id")
		if err != nil {
			return err
		}
		id = parsed
	} else if payload.ID != nil && *payload.ID > 0 {
		id = *payload.ID
	} else {
		return exception.BadRequest("invalid available id")
	}

	available, err := handler.AvailableUsecase.UpdateAvailable(ctx.UserContext(), id, payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(available))
}

func (handler *AvailableHandler) DeleteAvailable(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "available id")
	if err != nil {
		return err
	}

	available, err := handler.AvailableUsecase.DeleteAvailable(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	handler.Logger.Infof("available tour %d deleted", id)
	return ctx.Status(fiber.StatusOK).JSON(res.OKWithMessage("available tour deleted successfully", available))
}
