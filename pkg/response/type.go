package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message carried by successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failure detail from callers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unanticipated failures.
	InternalServerErrorCode = 500
)
