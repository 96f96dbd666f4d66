// Package common defines shared constants and sentinel errors used across
// TableKeeper client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Transport / auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnavailable  = errors.New("server unavailable")
	ErrorTimeout      = errors.New("request timed out")

	// Validation errors (field-scoped details carried separately).
	ErrorValidation = errors.New("validation error")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
