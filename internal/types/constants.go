package types

import (
	"errors"
	"time"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "spendings-go/1.0.0"
)

// Common errors
var (
	// ErrInvalidRequest is returned when an endpoint cannot be turned into
	// a well-formed HTTP request
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDecodeFailure is returned when a response body does not match the
	// expected resource shape
	ErrDecodeFailure = errors.New("decode failure")
)
