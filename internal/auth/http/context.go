// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	"github.com/google/uuid"
)

// userIDKey is a context key type for storing the authenticated user id.
type userIDKey struct{}

// WithUserID stores the authenticated user id in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves the authenticated user id from the context.
// Returns (userID, true) if a non-nil id is present, or (uuid.Nil, false) otherwise.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
