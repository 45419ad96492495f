// Package usecase implements business logic orchestration for secret management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	"github.com/corpassist/secrets/internal/database"
	apperrors "github.com/corpassist/secrets/internal/errors"
	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
	appValidation "github.com/corpassist/secrets/internal/validation"
)

// secretUseCase implements the SecretUseCase interface for managing secrets.
type secretUseCase struct {
	txManager  database.TxManager
	secretRepo SecretRepository
	cipher     StringCipher
}

// validateStoreSecretCommand validates the command using jellydator/validation.
func (s *secretUseCase) validateStoreSecretCommand(cmd secretsDomain.StoreSecretCommand) error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.UserID,
			validation.By(func(value any) error {
				if id, _ := value.(uuid.UUID); id == uuid.Nil {
					return validation.NewError("validation_required", "user id is required")
				}
				return nil
			}),
		),
		validation.Field(&cmd.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			appValidation.SecretName,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&cmd.Description,
			validation.Length(0, 1024).Error("description must be at most 1024 characters"),
		),
		validation.Field(&cmd.SecretType,
			validation.Required.Error("secret type is required"),
			validation.By(func(value any) error {
				secretType, _ := value.(secretsDomain.SecretType)
				return secretType.Validate()
			}),
		),
		validation.Field(&cmd.SecretData, appValidation.UTF8),
	)
	return appValidation.WrapValidationError(err)
}

// StoreSecret encrypts the secret value bound to the owner's encryption context and
// persists it within a transaction.
func (s *secretUseCase) StoreSecret(
	ctx context.Context,
	cmd secretsDomain.StoreSecretCommand,
) (*secretsDomain.SecretReference, error) {
	if err := s.validateStoreSecretCommand(cmd); err != nil {
		return nil, err
	}

	var ref *secretsDomain.SecretReference
	err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		id, err := uuid.NewV7()
		if err != nil {
			return apperrors.Wrap(err, "failed to generate secret id")
		}

		encryptionContext := secretsDomain.NewUserEncryptionContext(cmd.UserID)
		serialized, err := encryptionContext.Serialize()
		if err != nil {
			return apperrors.Wrap(err, "failed to serialize encryption context")
		}

		encryptedData, err := s.cipher.EncryptWithContext(cmd.SecretData, serialized)
		if err != nil {
			return apperrors.Wrap(err, "failed to encrypt secret")
		}

		secret := &secretsDomain.EncryptedSecret{
			ID:                id,
			UserID:            cmd.UserID,
			Name:              cmd.Name,
			Description:       cmd.Description,
			SecretType:        cmd.SecretType,
			EncryptedData:     encryptedData,
			EncryptionContext: encryptionContext,
			CreatedAt:         time.Now().UTC(),
		}

		ref, err = s.secretRepo.Create(txCtx, secret)
		return err
	})
	if err != nil {
		return nil, err
	}

	return ref, nil
}

// RevealSecret decrypts a secret for its owner.
func (s *secretUseCase) RevealSecret(
	ctx context.Context,
	secretID, requestingUserID uuid.UUID,
) (*secretsDomain.SecretRevealed, error) {
	secret, err := s.getOwned(ctx, secretID, requestingUserID)
	if err != nil {
		return nil, err
	}

	// The stored context must name the row owner, otherwise the context column was
	// tampered with independently of user_id.
	if secret.EncryptionContext["user_id"] != secret.UserID.String() {
		return nil, cryptoDomain.ErrContextMismatch
	}

	serialized, err := secret.EncryptionContext.Serialize()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to serialize encryption context")
	}

	plaintext, err := s.cipher.DecryptWithContext(secret.EncryptedData, serialized)
	if err != nil {
		return nil, err
	}

	return &secretsDomain.SecretRevealed{
		ID:          secret.ID,
		UserID:      secret.UserID,
		Name:        secret.Name,
		Description: secret.Description,
		SecretType:  secret.SecretType,
		SecretData:  plaintext,
	}, nil
}

// RemoveSecret verifies ownership and reports that removal is unsupported. No data is
// modified.
func (s *secretUseCase) RemoveSecret(ctx context.Context, secretID, requestingUserID uuid.UUID) error {
	if _, err := s.getOwned(ctx, secretID, requestingUserID); err != nil {
		return err
	}
	return secretsDomain.ErrSecretRemovalUnsupported
}

// ListSecrets returns the metadata of the secrets owned by userID.
func (s *secretUseCase) ListSecrets(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.SecretReference, error) {
	secrets, err := s.secretRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	refs := make([]*secretsDomain.SecretReference, 0, len(secrets))
	for _, secret := range secrets {
		refs = append(refs, secret.Reference())
	}
	return refs, nil
}

// getOwned loads a secret and fails with ErrPermissionDenied unless requestingUserID owns it.
func (s *secretUseCase) getOwned(
	ctx context.Context,
	secretID, requestingUserID uuid.UUID,
) (*secretsDomain.EncryptedSecret, error) {
	secret, err := s.secretRepo.Get(ctx, secretID)
	if err != nil {
		return nil, err
	}
	if secret.UserID != requestingUserID {
		return nil, secretsDomain.ErrPermissionDenied
	}
	return secret, nil
}

// NewSecretUseCase creates a new secret use case instance with the provided dependencies.
func NewSecretUseCase(
	txManager database.TxManager,
	secretRepo SecretRepository,
	cipher StringCipher,
) SecretUseCase {
	return &secretUseCase{
		txManager:  txManager,
		secretRepo: secretRepo,
		cipher:     cipher,
	}
}
