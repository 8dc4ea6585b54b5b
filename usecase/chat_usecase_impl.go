package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	"tour-booking-api/repository"
)

const NewMessageTitle = "You have a new message"

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	Users *repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewChatUsecase(chatRepository *repository.ChatRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) ChatUsecase {
	return &ChatUsecaseImpl{
		ChatRepository: chatRepository,
		Users:          userRepository,
		Validate:       validate,
		DB:             DB,
		Log:            logger,
	}
}

func (uc *ChatUsecaseImpl) GetMessages(ctx context.Context) ([]res.MessageResponse, error) {
	messages, err := uc.ChatRepository.FindMessages(ctx, uc.DB)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to get messages")
		return nil, exception.Internal(err)
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, res.NewMessageResponse(&messages[i]))
	}
	return responses, nil
}

func (uc *ChatUsecaseImpl) SendMessage(ctx context.Context, userID uint, request *req.SendMessageRequest) (res.MessageResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.MessageResponse{}, exception.FromValidator(err)
	}

	message := &entity.Message{UserID: userID, Message: strings.TrimSpace(request.Message)}
	if err := uc.ChatRepository.Save(ctx, uc.DB, message); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("userId", userID).Msg("failed to save message")
		return res.MessageResponse{}, exception.Internal(err)
	}

	saved, err := uc.ChatRepository.FindMessage(ctx, uc.DB, message.ID)
	if err != nil {
		return res.MessageResponse{}, exception.Internal(err)
	}
	return res.NewMessageResponse(saved), nil
}

func (uc *ChatUsecaseImpl) GetUsers(ctx context.Context) ([]res.ChatUserResponse, error) {
	var users []entity.User
	if err := uc.Users.FindAll(ctx, uc.DB, &users); err != nil {
		return nil, exception.Internal(err)
	}

	responses := make([]res.ChatUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, res.ChatUserResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
		})
	}
	return responses, nil
}

func (uc *ChatUsecaseImpl) GetPrivateMessages(ctx context.Context, userID, receiverID uint) ([]entity.PrivateMessage, error) {
	messages, err := uc.ChatRepository.FindConversation(ctx, uc.DB, userID, receiverID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	return messages, nil
}

func (uc *ChatUsecaseImpl) SendPrivateMessage(ctx context.Context, userID uint, request *req.SendPrivateMessageRequest) (*entity.PrivateMessage, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}

	exists, err := uc.Users.ExistsById(ctx, uc.DB, request.ReceiverID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if !exists {
		return nil, exception.NotFound("receiver not found")
	}

	message := &entity.PrivateMessage{
		SenderID:   userID,
		ReceiverID: request.ReceiverID,
		Message:    strings.TrimSpace(request.Message),
	}
	notification := &entity.Notification{
		UserID:   request.ReceiverID,
		SenderID: userID,
		Title:    NewMessageTitle,
	}
	if err := uc.ChatRepository.SavePrivateMessage(ctx, uc.DB, message, notification); err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Uint("senderId", userID).
			Uint("receiverId", request.ReceiverID).
			Msg("failed to send private message")
		return nil, exception.Internal(err)
	}

	uc.Log.Http.Trace.Trace().
		Uint("messageId", message.ID).
		Uint("notificationId", notification.ID).
		Msg("private message sent")
	return message, nil
}

func (uc *ChatUsecaseImpl) GetLastMessages(ctx context.Context, userID uint) ([]res.LastMessageResponse, error) {
	peers, err := uc.Users.FindAllExcept(ctx, uc.DB, userID)
	if err != nil {
		return nil, exception.Internal(err)
	}

	responses := make([]res.LastMessageResponse, 0, len(peers))
	for _, peer := range peers {
		last, err := uc.ChatRepository.FindLastMessage(ctx, uc.DB, userID, peer.ID)
		if err != nil {
			return nil, exception.Internal(err)
		}

		response := res.LastMessageResponse{UserID: peer.ID, Name: peer.Name, Avatar: peer.Avatar}
		if last != nil {
			text, createdAt := last.Message, last.CreatedAt
			response.LastMessage = &text
			response.CreatedAt = &createdAt
		}
		responses = append(responses, response)
	}

	// active conversations first, newest on top; peers keep id order otherwise
	sort.SliceStable(responses, func(i, j int) bool {
		a, b := responses[i].CreatedAt, responses[j].CreatedAt
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return responses, nil
}
