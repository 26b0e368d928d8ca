package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services return errors wrapping exactly one of
// these; the HTTP layer maps each kind to its status code.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// E returns an error with a caller-facing message wrapping the given kind,
// so errors.Is(err, kind) holds and err.Error() is the message alone.
func E(kind error, message string) error {
	return &appError{kind: kind, message: message}
}

// Ef is E with fmt formatting.
func Ef(kind error, format string, args ...interface{}) error {
	return E(kind, fmt.Sprintf(format, args...))
}

type appError struct {
	kind    error
	message string
}

func (e *appError) Error() string { return e.message }

func (e *appError) Unwrap() error { return e.kind }
