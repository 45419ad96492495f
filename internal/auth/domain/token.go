package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is a signed bearer token identifying a user.
type Token struct {
	Value     string `json:"-"`
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}
