package service

import "errors"

// Kind classifies a service failure so handlers can pick a response code
// without matching on message strings.
type Kind int

const (
	// KindNotFound means the requested record does not exist.
	KindNotFound Kind = iota
	// KindValidation means the input was rejected before any write happened.
	KindValidation
	// KindPersistence means the underlying store refused or failed the write.
	KindPersistence
	// KindSideEffect means the primary write succeeded but a dependent side
	// effect (such as the notification mail) failed afterwards.
	KindSideEffect
)

// Error is the failure type returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a not-found error for the given entity name.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Validation builds a validation error naming the missing or invalid field.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Persistence wraps a storage failure. The underlying message is passed
// through verbatim; the controller layer decides how much of it to expose.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: err.Error(), Err: err}
}

// AsError unwraps err into a service Error, defaulting unknown errors to a
// persistence fault so nothing escapes the taxonomy.
func AsError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return Persistence(err)
}
