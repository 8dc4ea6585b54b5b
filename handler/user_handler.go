package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/middleware"
	"tour-booking-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) SignUp(ctx *fiber.Ctx) error {
	// parse request
	payload := new(req.SignUpRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	authResponse, err := handler.UserUsecase.SignUp(ctx.UserContext(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to sign up")
		return err
	}

	handler.Logger.Infof("user signed up with id: %d", authResponse.User.ID)
	return ctx.Status(fiber.StatusCreated).JSON(res.OK(authResponse))
}

func (handler *UserHandler) SignIn(ctx *fiber.Ctx) error {
	payload := new(req.SignInRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	authResponse, err := handler.UserUsecase.SignIn(ctx.UserContext(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to sign in")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(authResponse))
}

func (handler *UserHandler) RefreshToken(ctx *fiber.Ctx) error {
	payload := new(req.RefreshTokenRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	sessionResponse, err := handler.UserUsecase.RefreshToken(ctx.UserContext(), payload)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(sessionResponse))
}

func (handler *UserHandler) Me(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUserByID(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(userResponse))
}

func (handler *UserHandler) GetUserByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "user id")
	if err != nil {
		return err
	}

	userResponse, err := handler.UserUsecase.GetUserByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(userResponse))
}

func (handler *UserHandler) SignOut(ctx *fiber.Ctx) error {
	err := handler.UserUsecase.SignOut(ctx.UserContext(), middleware.AccessToken(ctx), middleware.Claims(ctx))
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to sign out")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.Info("signed out successfully"))
}

func (handler *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id", "user id")
	if err != nil {
		return err
	}

	payload := new(req.UpdateUserRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	userResponse, err := handler.UserUsecase.UpdateUser(ctx.UserContext(), middleware.AccessToken(ctx), middleware.UserID(ctx), id, payload)
	if err != nil {
		handler.Logger.WithError(err).Warnf("failed to update user %d", id)
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.OK(userResponse))
}
