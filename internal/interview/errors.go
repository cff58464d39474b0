package interview

import "errors"

// ErrorKind classifies a workflow failure for HTTP mapping.
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation_error"
	KindNotFound         ErrorKind = "not_found"
	KindInvalidState     ErrorKind = "invalid_state"
	KindInsufficientData ErrorKind = "insufficient_data"
	KindUpstream         ErrorKind = "upstream_error"
)

// Error is a workflow error with a kind handlers translate to a status code.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func invalidStateError(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func insufficientDataError(message string) *Error {
	return &Error{Kind: KindInsufficientData, Message: message}
}

func upstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to upstream for unknown errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}
