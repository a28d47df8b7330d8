// Package common defines shared constants and sentinel errors used across
// client and server layers of gophtasks. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// IsClientError reports whether err is one of the sentinels caused by the
// request itself rather than by the server.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrorNotFound, ErrorAlreadyExists, ErrorUnauthorized,
		ErrorForbidden, ErrorValidation, ErrInvalidToken, ErrTokenExpired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
