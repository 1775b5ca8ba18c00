// Package apperrors defines the sentinel errors shared by handlers and
// storage. The fiber error handler maps them to HTTP status codes in one
// place, so individual handlers never pick status codes themselves.
package apperrors

import "errors"

var (
	// ErrValidation signals a missing or malformed required field.
	ErrValidation = errors.New("validation error")

	// ErrNotFound signals that a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("email is not verified")
)
