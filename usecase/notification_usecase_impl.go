package usecase

import (
	"context"

	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	"tour-booking-api/repository"
)

type NotificationUsecaseImpl struct {
	*repository.NotificationRepository
	*gorm.DB
	Log *logger.AppLogger
}

func NewNotificationUsecase(notificationRepository *repository.NotificationRepository, DB *gorm.DB, logger *logger.AppLogger) NotificationUsecase {
	return &NotificationUsecaseImpl{NotificationRepository: notificationRepository, DB: DB, Log: logger}
}

func (uc *NotificationUsecaseImpl) GetNotifications(ctx context.Context, userID uint, includeRead bool) ([]entity.Notification, error) {
	notifications, err := uc.NotificationRepository.FindByUser(ctx, uc.DB, userID, includeRead)
	if err != nil {
		return nil, exception.Internal(err)
	}
	return notifications, nil
}

func (uc *NotificationUsecaseImpl) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	updated, err := uc.NotificationRepository.MarkAllRead(ctx, uc.DB, userID)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("userId", userID).Msg("failed to mark notifications read")
		return 0, exception.Internal(err)
	}
	uc.Log.Http.Info.Info().Uint("userId", userID).Int64("updated", updated).Msg("notifications marked read")
	return updated, nil
}
