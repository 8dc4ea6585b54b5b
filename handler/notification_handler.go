package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/res"
	"tour-booking-api/middleware"
	"tour-booking-api/usecase"
)

type NotificationHandler struct {
	usecase.NotificationUsecase
	*logrus.Logger
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{NotificationUsecase: notificationUsecase, Logger: logger}
}

// GetNotifications lists unread notifications; ?all=true includes read ones.
func (handler *NotificationHandler) GetNotifications(ctx *fiber.Ctx) error {
	notifications, err := handler.NotificationUsecase.GetNotifications(ctx.UserContext(), middleware.UserID(ctx), ctx.QueryBool("all", false))
	if err != nil {
		handler.Logger.WithError(err).Error("failed to get notifications")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(notifications))
}

func (handler *NotificationHandler) MarkAllRead(ctx *fiber.Ctx) error {
	updated, err := handler.NotificationUsecase.MarkAllRead(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OKWithMessage("all notifications marked as read", res.MarkReadResponse{Updated: updated}))
}
