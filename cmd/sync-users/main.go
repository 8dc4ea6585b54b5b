// Command sync-users creates local rows for identity-provider users that have none yet.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tour-booking-api/config"
	"tour-booking-api/config/common"
	"tour-booking-api/config/logger"
	"tour-booking-api/repository"
	"tour-booking-api/security"
	"tour-booking-api/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newConfig := common.NewViper()
	log := config.NewLogger(newConfig)
	appLogger := logger.NewLogger()
	newDB := config.NewDB(newConfig, appLogger)

	syncUsecase := usecase.NewUserSyncUsecase(
		repository.NewUserRepository(),
		newDB.GetDB(),
		appLogger,
		security.NewGoTrueProvider(newConfig),
	)

	result, err := syncUsecase.SyncUsers(ctx)
	if err != nil {
		log.WithError(err).Error("user sync failed")
		os.Exit(1)
	}
	log.WithField("created", result.Created).WithField("skipped", result.Skipped).Info("user sync finished")
}
