package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the API boundary.
type Kind string

const (
	KindMissingField       Kind = "missing_field"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindNotFound           Kind = "not_found"
	KindInvalidSignature   Kind = "invalid_signature"
	KindExpired            Kind = "expired"
	KindMalformed          Kind = "malformed"
	KindRevoked            Kind = "revoked"
	KindForbidden          Kind = "forbidden"
	KindTooLarge           Kind = "too_large"
	KindBadRequest         Kind = "bad_request"
	KindInternal           Kind = "internal"
)

// Error carries a kind, a message that is safe to show to clients, and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match on kind, so sentinels like ErrNotFound compare against any NotFound error.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func MissingField(field string) *Error {
	return New(KindMissingField, "Missing required field: "+field)
}

func NotFound(resource string) *Error {
	return New(KindNotFound, resource+" not found")
}

func Forbidden() *Error {
	return New(KindForbidden, "forbidden")
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal server error", err)
}

// KindOf returns the kind of err, or KindInternal for errors that were never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Sentinels for errors.Is comparisons in callers and tests.
var (
	ErrMissingField       = &Error{Kind: KindMissingField}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidSignature   = &Error{Kind: KindInvalidSignature}
	ErrExpired            = &Error{Kind: KindExpired}
	ErrMalformed          = &Error{Kind: KindMalformed}
	ErrRevoked            = &Error{Kind: KindRevoked}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrTooLarge           = &Error{Kind: KindTooLarge}
	ErrBadRequest         = &Error{Kind: KindBadRequest}
)
