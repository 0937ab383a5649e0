package spendings

import (
	"errors"

	"github.com/hung-m-dao/spendings-app/internal/types"
)

// Sentinel errors, re-exported for callers matching with errors.Is
var (
	// ErrInvalidRequest is returned when an endpoint cannot be turned
	// into a well-formed HTTP request
	ErrInvalidRequest = types.ErrInvalidRequest

	// ErrDecodeFailure is returned when a payload does not match the
	// expected resource shape
	ErrDecodeFailure = types.ErrDecodeFailure
)

// Error represents a classified API error
type Error = types.Error

// HTTPStatus reports the status code carried by err when err is an
// HTTP-status error.
func HTTPStatus(err error) (int, bool) {
	var apiErr *types.Error
	if errors.As(err, &apiErr) && apiErr.Code == types.CodeHTTPStatus {
		return apiErr.StatusCode, true
	}
	return 0, false
}

// IsDecodeFailure reports whether err was classified as a decode failure
func IsDecodeFailure(err error) bool {
	if errors.Is(err, ErrDecodeFailure) {
		return true
	}
	var apiErr *types.Error
	return errors.As(err, &apiErr) && apiErr.Code == types.CodeDecodeFailure
}

// IsInvalidRequest reports whether err was classified as an
// invalid-request error
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
