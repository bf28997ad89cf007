package process

import (
	"context"
	"errors"
)

// ErrorKind classifies a failed submission
type ErrorKind string

const (
	// KindServer means the backend answered with a non-success status
	KindServer ErrorKind = "server"

	// KindNetwork means no response was received at all
	KindNetwork ErrorKind = "network"

	// KindTimeout means the request exceeded its deadline
	KindTimeout ErrorKind = "timeout"

	// KindBadResponse means a success status carried an unusable body
	KindBadResponse ErrorKind = "bad_response"
)

// User-facing fallback messages for failures without a server-supplied detail
const (
	MsgGenericError       = "An error occurred"
	MsgUnexpectedResponse = "Unexpected response from server"
	MsgTimeout            = "The request timed out, please try again"
)

// Error is a settled submission failure carrying the message shown to the user.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the user-facing message
func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	if message == "" {
		message = MsgGenericError
	}
	return &Error{Kind: kind, Message: message}
}

// UserMessage extracts the message to display for a failed submission. Errors
// outside the package taxonomy collapse to the generic fallback.
func UserMessage(err error) string {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	return MsgGenericError
}
