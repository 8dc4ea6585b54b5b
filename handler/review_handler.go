package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/usecase"
)

type ReviewHandler struct {
	usecase.ReviewUsecase
	*logrus.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{ReviewUsecase: reviewUsecase, Logger: logger}
}

func (handler *ReviewHandler) GetReviews(ctx *fiber.Ctx) error {
	reviews, err := handler.ReviewUsecase.GetReviews(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(reviews))
}

func (handler *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	payload := new(req.CreateReviewRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	review, err := handler.ReviewUsecase.CreateReview(ctx.UserContext(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to create review")
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(review))
}

func (handler *ReviewHandler) UpdateReview(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "review id")
	if err != nil {
		return err
	}

	payload := new(req.UpdateReviewRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	review, err := handler.ReviewUsecase.UpdateReview(ctx.UserContext(), id, payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(review))
}

func (handler *ReviewHandler) DeleteReview(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "review id")
	if err != nil {
		return err
	}

	if err := handler.ReviewUsecase.DeleteReview(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.Info("review deleted successfully"))
}
