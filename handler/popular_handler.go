package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/usecase"
)

type PopularHandler struct {
	usecase.PopularUsecase
	*logrus.Logger
}

func NewPopularHandler(popularUsecase usecase.PopularUsecase, logger *logrus.Logger) *PopularHandler {
	return &PopularHandler{PopularUsecase: popularUsecase, Logger: logger}
}

func (handler *PopularHandler) GetPopulars(ctx *fiber.Ctx) error {
	populars, err := handler.PopularUsecase.GetPopulars(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(populars))
}

func (handler *PopularHandler) GetPopularByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "popular id")
	if err != nil {
		return err
	}

	popular, err := handler.PopularUsecase.GetPopularByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(popular))
}

func (handler *PopularHandler) CreatePopular(ctx *fiber.Ctx) error {
	payload := new(req.CreatePopularRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	popular, err := handler.PopularUsecase.CreatePopular(ctx.UserContext(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to create popular tour")
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(popular))
}

func (handler *PopularHandler) UpdatePopular(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "popular id")
	if err != nil {
		return err
	}

	payload := new(req.UpdatePopularRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	popular, err := handler.PopularUsecase.UpdatePopular(ctx.UserContext(), id, payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(popular))
}

func (handler *PopularHandler) DeletePopular(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "popular id")
	if err != nil {
		return err
	}

	popular, err := handler.PopularUsecase.DeletePopular(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	handler.Logger.Infof("popular tour %d deleted", id)
	return ctx.Status(fiber.StatusOK).JSON(res.OKWithMessage("popular tour deleted successfully", popular))
}
