package req

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,notblank"`
}

type SendPrivateMessageRequest struct {
	ReceiverID uint   `json:"receiverId" validate:"required"`
	Message    string `json:"message" validate:"required,notblank"`
}
