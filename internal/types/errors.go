package types

import "fmt"

// Error codes used to classify request outcomes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeHTTPStatus     = "HTTP_STATUS"
	CodeDecodeFailure  = "DECODE_FAILURE"
)

// Error represents a classified API error
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Err        error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error: %s", e.Code)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}
