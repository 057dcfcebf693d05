// apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failed store or remote operation.
type Kind int

const (
	Unknown Kind = iota
	Validation
	NotFound
	Conflict
	Authorization
	Transport
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Authorization:
		return "authorization"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the typed error carried in a store's error slot and returned by
// every remote gateway. The Kind is the machine-readable signal; Message is
// what the UI shows.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error without an underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and user-facing message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from any error in the chain, Unknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// MessageOf returns the user-facing message, falling back to err.Error().
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsNotFound(err error) bool      { return KindOf(err) == NotFound }
func IsConflict(err error) bool      { return KindOf(err) == Conflict }
func IsValidation(err error) bool    { return KindOf(err) == Validation }
func IsAuthorization(err error) bool { return KindOf(err) == Authorization }
