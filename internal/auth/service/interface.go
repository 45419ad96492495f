// Package service provides the bearer token service used to identify API callers.
package service

import (
	"github.com/google/uuid"

	authDomain "github.com/corpassist/secrets/internal/auth/domain"
)

// TokenService issues and verifies bearer tokens whose subject is a user id.
type TokenService interface {
	// Issue signs a new token for userID.
	Issue(userID uuid.UUID) (*authDomain.Token, error)
	// Verify checks the signature, issuer and expiry of tokenString and returns the user id.
	Verify(tokenString string) (uuid.UUID, error)
}
