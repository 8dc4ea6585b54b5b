package usecase

import (
	"context"

	"tour-booking-api/entity"
)

type NotificationUsecase interface {
	GetNotifications(ctx context.Context, userID uint, includeRead bool) ([]entity.Notification, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}
