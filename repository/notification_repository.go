package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type NotificationRepository struct {
	Repository[entity.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (repository NotificationRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint, includeRead bool) ([]entity.Notification, error) {
	var notifications []entity.Notification
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeRead {
		query = query.Where("is_read = ?", false)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&notifications).Error
	return notifications, errors.Wrap(err, "find notifications")
}

func (repository NotificationRepository) MarkAllRead(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "mark notifications read")
	}
	return result.RowsAffected, nil
}
