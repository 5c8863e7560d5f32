package commons

// Envelope messages with a fixed meaning. Controllers map them onto status
// codes; any other failure message is answered with 500.
const (
	MessageValidationFailed   = "validation failed"
	MessageInvalidRequestBody = "invalid request body"
	MessageInvalidWebhook     = "invalid webhook"
	MessageUnauthorized       = "unauthorized"
	MessageWebhookFailed      = "webhook processing failed"
)

// Response is the JSON envelope every endpoint answers with.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// NotFound builds the "<Entity> not found" failure for a missing record.
func NotFound[T any](entity string, details ...string) Response[T] {
	return ErrorResponse[T](entity+" not found", details...)
}

// AlreadyExists builds the "<Entity> already exists" failure for a uniqueness conflict.
func AlreadyExists[T any](entity string, details ...string) Response[T] {
	return ErrorResponse[T](entity+" already exists", details...)
}
