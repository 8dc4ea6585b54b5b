package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"tour-booking-api/config/common"
	"tour-booking-api/config/logger"
	"tour-booking-api/handler"
	"tour-booking-api/middleware"
	"tour-booking-api/repository"
	"tour-booking-api/routes"
	"tour-booking-api/security"
	"tour-booking-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	Sessions *repository.SessionRepository
	Identity security.IdentityProvider
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogger(newConfig)
	app := NewFiber(newConfig, log)
	newDB := NewDB(newConfig, logger.NewLogger())
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newSessions := repository.NewSessionRepository(NewRedis(newConfig, log))
	newIdentity := security.NewGoTrueProvider(newConfig)

	App(&AppConfig{
		App:      app,
		Validate: newValidator,
		Logger:   log,
		DBConfig: newDB,
		JWT:      newJWT,
		Sessions: newSessions,
		Identity: newIdentity,
	})

	_, port := newConfig.GetAppConfig()
	if err := app.Listen(":" + port); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	db := aC.GetDB()
	appLogger := aC.DBConfig.AppLogger

	newUserRepository := repository.NewUserRepository()
	newChatRepository := repository.NewChatRepository()
	newCategoryRepository := repository.NewCategoryRepository()
	newPopularRepository := repository.NewPopularRepository()
	newAvailableRepository := repository.NewAvailableRepository()
	newReviewRepository := repository.NewReviewRepository()
	newFavoriteRepository := repository.NewFavoriteRepository()
	newNotificationRepository := repository.NewNotificationRepository()

	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Sessions, aC.Validate, db, appLogger, aC.Identity)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, newUserRepository, aC.Validate, db, appLogger)
	newCategoryUsecase := usecase.NewCategoryUsecase(newCategoryRepository, aC.Validate, db, appLogger)
	newPopularUsecase := usecase.NewPopularUsecase(newPopularRepository, newCategoryRepository, aC.Validate, db, appLogger)
	newAvailableUsecase := usecase.NewAvailableUsecase(newAvailableRepository, newCategoryRepository, aC.Validate, db, appLogger)
	newReviewUsecase := usecase.NewReviewUsecase(newReviewRepository, newUserRepository, newPopularRepository, newAvailableRepository, aC.Validate, db, appLogger)
	newFavoriteUsecase := usecase.NewFavoriteUsecase(newFavoriteRepository, newPopularRepository, aC.Validate, db, appLogger)
	newNotificationUsecase := usecase.NewNotificationUsecase(newNotificationRepository, db, appLogger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          middleware.NewMiddleware(aC.JWT, newUserUsecase, aC.Logger),
		UserHandler:         handler.NewUserHandler(newUserUsecase, aC.Logger),
		ChatHandler:         handler.NewChatHandler(newChatUsecase, aC.Logger),
		ReviewHandler:       handler.NewReviewHandler(newReviewUsecase, aC.Logger),
		PopularHandler:      handler.NewPopularHandler(newPopularUsecase, aC.Logger),
		AvailableHandler:    handler.NewAvailableHandler(newAvailableUsecase, aC.Logger),
		CategoryHandler:     handler.NewCategoryHandler(newCategoryUsecase, aC.Logger),
		FavoriteHandler:     handler.NewFavoriteHandler(newFavoriteUsecase, aC.Logger),
		NotificationHandler: handler.NewNotificationHandler(newNotificationUsecase, aC.Logger),
	}
	route.GetRoute()
}
