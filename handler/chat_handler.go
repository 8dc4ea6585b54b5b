package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/middleware"
	"tour-booking-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase: chatUsecase,
		Logger:      logger,
	}
}

func (handler *ChatHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := handler.ChatUsecase.GetMessages(c.UserContext())
	if err != nil {
		handler.Logger.WithError(err).Error("failed to get messages")
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.OK(messages))
}

func (handler *ChatHandler) SendMessage(c *fiber.Ctx) error {
	payload := new(req.SendMessageRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}

	message, err := handler.ChatUsecase.SendMessage(c.UserContext(), middleware.UserID(c), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res.OK(message))
}

func (handler *ChatHandler) GetUsers(c *fiber.Ctx) error {
	users, err := handler.ChatUsecase.GetUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.OK(users))
}

func (handler *ChatHandler) GetPrivateMessages(c *fiber.Ctx) error {
	receiverID, err := paramID(c, "receiverId", "receiver id")
	if err != nil {
		return err
	}

	messages, err := handler.ChatUsecase.GetPrivateMessages(c.UserContext(), middleware.UserID(c), receiverID)
	if err != nil {
		handler.Logger.WithError(err).Error("failed to get private messages")
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.OK(messages))
}

func (handler *ChatHandler) SendPrivateMessage(c *fiber.Ctx) error {
	payload := new(req.SendPrivateMessageRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}

	message, err := handler.ChatUsecase.SendPrivateMessage(c.UserContext(), middleware.UserID(c), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to send private message")
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res.OK(message))
}

func (handler *ChatHandler) GetLastMessages(c *fiber.Ctx) error {
	lastMessages, err := handler.ChatUsecase.GetLastMessages(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.OK(lastMessages))
}
