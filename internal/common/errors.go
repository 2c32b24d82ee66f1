// Package common defines shared constants and sentinel errors used across
// the cinepass account service. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorNotActivated       = errors.New("account is not activated")
	ErrorAlreadyActivated   = errors.New("account is already active")

	// Single-use token lifecycle. One deliberately generic value covers
	// not-found, expired and wrong-owner so a response cannot be used to
	// enumerate accounts or probe token state.
	ErrorInvalidOrExpiredToken = errors.New("invalid or expired token")

	// Signed token errors (codec-level, distinguishable).
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")

	// Refresh flow errors.
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
