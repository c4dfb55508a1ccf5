package services

import (
	"errors"
	"net/http"
)

// Error kinds. Handlers map these to HTTP status codes with HTTPStatus;
// service methods attach the human-readable message.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrConflict          = errors.New("conflict")
	ErrDuplicatePair     = errors.New("duplicate pair")
)

// Error pairs a kind with a wire-facing message. errors.Is matches the kind;
// Error() carries only the message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// NewError builds a kinded service error.
func NewError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

// HTTPStatus maps a service error kind to its HTTP status code. Unrecognized
// errors surface as a generic server error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	// A duplicate collaboration pair surfaces as 400, not 409, alongside the
	// lifecycle violations.
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidOperation),
		errors.Is(err, ErrDuplicatePair):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
