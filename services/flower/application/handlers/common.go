package handlers

// APIResponse is the success envelope wrapping every flower endpoint payload.
type APIResponse[T any] struct {
	Success bool   `json:"success" example:"true"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty" example:"Flower created successfully"`
} // @name APIResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"flower not found"`
} // @name ErrorResponse

func success[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

func successWithMessage[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data, Message: message}
}
