package res

// CommonResponse is the success envelope.
type CommonResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

func OK[T any](data T) CommonResponse[T] {
	return CommonResponse[T]{Success: true, Data: data}
}

func OKWithMessage[T any](message string, data T) CommonResponse[T] {
	return CommonResponse[T]{Success: true, Message: message, Data: data}
}

// InfoResponse is a success envelope without a payload.
type InfoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Info(message string) InfoResponse {
	return InfoResponse{Success: true, Message: message}
}
