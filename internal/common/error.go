// Package common defines shared constants and sentinel errors used across
// the client and server layers of Taskify. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid email or password")

	// Validation errors (client-fixable input).
	ErrValidation     = errors.New("validation error")
	ErrDuplicateEmail = errors.New("email is already registered")

	// Auth errors. ErrMissingToken covers an absent Authorization header,
	// ErrInvalidToken a bad signature or malformed payload.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
