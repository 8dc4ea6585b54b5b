package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/usecase"
)

type CategoryHandler struct {
	usecase.CategoryUsecase
	*logrus.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{CategoryUsecase: categoryUsecase, Logger: logger}
}

func (handler *CategoryHandler) GetCategories(ctx *fiber.Ctx) error {
	categories, err := handler.CategoryUsecase.GetCategories(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(categories))
}

func (handler *CategoryHandler) CreateCategory(ctx *fiber.Ctx) error {
	payload := new(req.CategoryRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	category, err := handler.CategoryUsecase.CreateCategory(ctx.UserContext(), payload)
	if err != nil {
		return err
	}
	handler.Logger.Infof("category created with id: %d", category.ID)
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(category))
}

func (handler *CategoryHandler) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "category id")
	if err != nil {
		return err
	}

	payload := new(req.CategoryRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	category, err := handler.CategoryUsecase.UpdateCategory(ctx.UserContext(), id, payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(category))
}

func (handler *CategoryHandler) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "category id")
	if err != nil {
		return err
	}

	if err := handler.CategoryUsecase.DeleteCategory(ctx.UserContext(), id); err != nil {
		return err
	}
	handler.Logger.Infof("category %d deleted", id)
	return ctx.Status(fiber.StatusOK).JSON(res.Info("category deleted successfully"))
}
