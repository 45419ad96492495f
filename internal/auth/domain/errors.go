// Package domain defines the identity model used to authenticate API callers.
package domain

import (
	"github.com/corpassist/secrets/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidToken indicates a bearer token that is malformed, badly signed or issued by
	// someone else.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates a bearer token past its expiration time.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrInvalidSubject indicates a token whose subject is not a user UUID.
	ErrInvalidSubject = errors.Wrap(errors.ErrUnauthorized, "invalid token subject")

	// ErrSigningKeyNotSet indicates AUTH_JWT_SECRET is empty.
	ErrSigningKeyNotSet = errors.New("AUTH_JWT_SECRET is not set")
)
