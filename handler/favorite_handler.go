package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/middleware"
	"tour-booking-api/usecase"
)

type FavoriteHandler struct {
	usecase.FavoriteUsecase
	*logrus.Logger
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteUsecase: favoriteUsecase, Logger: logger}
}

func (handler *FavoriteHandler) GetFavorites(ctx *fiber.Ctx) error {
	favorites, err := handler.FavoriteUsecase.GetFavorites(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(favorites))
}

func (handler *FavoriteHandler) AddFavorite(ctx *fiber.Ctx) error {
	payload := new(req.AddFavoriteRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	favorite, err := handler.FavoriteUsecase.AddFavorite(ctx.UserContext(), middleware.UserID(ctx), payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(favorite))
}

func (handler *FavoriteHandler) RemoveFavorite(ctx *fiber.Ctx) error {
	popularID, err := paramID(ctx, "popularId", "popular id")
	if err != nil {
		return err
	}

	if err := handler.FavoriteUsecase.RemoveFavorite(ctx.UserContext(), middleware.UserID(ctx), popularID); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.Info("removed from favorites"))
}
