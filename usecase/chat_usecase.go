package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/entity"
)

type ChatUsecase interface {
	GetMessages(ctx context.Context) ([]res.MessageResponse, error)
	SendMessage(ctx context.Context, userID uint, request *req.SendMessageRequest) (res.MessageResponse, error)
	GetUsers(ctx context.Context) ([]res.ChatUserResponse, error)
	GetPrivateMessages(ctx context.Context, userID, receiverID uint) ([]entity.PrivateMessage, error)
	// SendPrivateMessage also notifies the receiver, atomically.
	SendPrivateMessage(ctx context.Context, userID uint, request *req.SendPrivateMessageRequest) (*entity.PrivateMessage, error)
	GetLastMessages(ctx context.Context, userID uint) ([]res.LastMessageResponse, error)
}
