// Package common defines shared constants and sentinel errors used across
// the tenantnotes server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Token lifecycle errors (invalid or malformed vs. expired).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Plan/quota errors. Both belong to the normal decision surface and are
	// expected outcomes, not failures.
	ErrQuotaExceeded = errors.New("note quota exceeded")
	ErrAlreadyOnPlan = errors.New("tenant is already on this plan")
)
