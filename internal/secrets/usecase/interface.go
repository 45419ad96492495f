// Package usecase defines the interfaces and implementations for secret management use cases.
// Use cases orchestrate operations between repositories and the string cipher to store
// secrets bound to their owner and reveal them only to that owner.
package usecase

import (
	"context"

	"github.com/google/uuid"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// SecretRepository defines the interface for Secret persistence operations.
type SecretRepository interface {
	// Create persists an encrypted secret. It fails with ErrSecretAlreadyExists when the
	// user already owns a secret with the same name.
	Create(ctx context.Context, secret *secretsDomain.EncryptedSecret) (*secretsDomain.SecretReference, error)
	// Get returns the encrypted secret or ErrSecretNotFound.
	Get(ctx context.Context, secretID uuid.UUID) (*secretsDomain.EncryptedSecret, error)
	// ListByUser returns the secrets owned by userID ordered by creation time, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*secretsDomain.EncryptedSecret, error)
}

// StringCipher encrypts strings bound to an authorization context.
type StringCipher interface {
	EncryptWithContext(plaintext, context string) (string, error)
	DecryptWithContext(blob, expectedContext string) (string, error)
}

// SecretUseCase defines the interface for secret management business logic.
type SecretUseCase interface {
	// StoreSecret encrypts the secret for its owner and persists it. Only metadata is
	// returned.
	StoreSecret(ctx context.Context, cmd secretsDomain.StoreSecretCommand) (*secretsDomain.SecretReference, error)
	// RevealSecret decrypts a secret on behalf of requestingUserID. Non-owners get
	// ErrPermissionDenied and no decryption is attempted.
	RevealSecret(ctx context.Context, secretID, requestingUserID uuid.UUID) (*secretsDomain.SecretRevealed, error)
	// RemoveSecret checks ownership and then fails with ErrSecretRemovalUnsupported.
	RemoveSecret(ctx context.Context, secretID, requestingUserID uuid.UUID) error
	// ListSecrets returns metadata for the secrets owned by userID.
	ListSecrets(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*secretsDomain.SecretReference, error)
}
