package dogceo

import "errors"

// ErrMsgNoSubBreeds is the message returned by SubBreeds when the listing is empty.
const ErrMsgNoSubBreeds = "the breed does not have sub-breeds"

// Error is the single error kind returned by the client.
// Message is either the API's own explanation or the underlying failure's text.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the transport or decode failure, if any.
func (e *Error) Unwrap() error { return e.cause }

// IsError reports whether err is, or wraps, a client *Error.
func IsError(err error) bool {
	var target *Error
	return errors.As(err, &target)
}

func newError(msg string) *Error {
	return &Error{Message: msg}
}

func wrapError(err error) *Error {
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	return &Error{Message: err.Error(), cause: err}
}
