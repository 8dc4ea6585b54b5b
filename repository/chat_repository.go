package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type ChatRepository struct {
	Repository[entity.Message]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func selectSender(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

func (repository ChatRepository) FindMessages(ctx context.Context, db *gorm.DB) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("User", selectSender).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	return messages, errors.Wrap(err, "find messages")
}

func (repository ChatRepository) FindMessage(ctx context.Context, db *gorm.DB, id uint) (*entity.Message, error) {
	var message entity.Message
	err := db.WithContext(ctx).
		Preload("User", selectSender).
		Where("id = ?", id).
		Take(&message).Error
	if err != nil {
		return nil, errors.Wrap(err, "find message")
	}
	return &message, nil
}

func conversation(db *gorm.DB, userA, userB uint) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	)
}

func (repository ChatRepository) FindConversation(ctx context.Context, db *gorm.DB, userA, userB uint) ([]entity.PrivateMessage, error) {
	var messages []entity.PrivateMessage
	err := conversation(db.WithContext(ctx), userA, userB).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	return messages, errors.Wrap(err, "find conversation")
}

// FindLastMessage returns nil when the pair never talked.
func (repository ChatRepository) FindLastMessage(ctx context.Context, db *gorm.DB, userA, userB uint) (*entity.PrivateMessage, error) {
	var messages []entity.PrivateMessage
	err := conversation(db.WithContext(ctx), userA, userB).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "find last message")
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return &messages[0], nil
}

// SavePrivateMessage stores the message and the receiver's notification together.
func (repository ChatRepository) SavePrivateMessage(ctx context.Context, db *gorm.DB, message *entity.PrivateMessage, notification *entity.Notification) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return errors.Wrap(err, "save private message")
		}
		return errors.Wrap(tx.Create(notification).Error, "save notification")
	})
}
