package res

import (
	"time"

	"tour-booking-api/entity"
)

type SenderResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type MessageResponse struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"userId"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"createdAt"`
	User      SenderResponse `json:"user"`
}

func NewMessageResponse(message *entity.Message) MessageResponse {
	response := MessageResponse{
		ID:        message.ID,
		UserID:    message.UserID,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
	if message.User != nil {
		response.User = SenderResponse{ID: message.User.ID, Name: message.User.Name, Avatar: message.User.Avatar}
	}
	return response
}

type ChatUserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// LastMessageResponse leaves LastMessage and CreatedAt null when the pair never talked.
type LastMessageResponse struct {
	UserID      uint       `json:"userId"`
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar"`
	LastMessage *string    `json:"lastMessage"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
