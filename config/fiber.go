package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"tour-booking-api/config/common"
	"tour-booking-api/middleware"
)

func NewFiber(cfg *common.Config, log *logrus.Logger) *fiber.App {
	appName, _ := cfg.GetAppConfig()
	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		AppName:       appName,
		ErrorHandler:  middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Output: log.Writer()}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetCorsOrigins(),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	return app
}
