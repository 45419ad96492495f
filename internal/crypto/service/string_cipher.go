package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"unicode/utf8"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	"github.com/corpassist/secrets/internal/logging"
)

// StringCipherService encrypts and decrypts UTF-8 strings into self-contained blobs.
//
// Every Encrypt call draws a fresh 16-byte salt and 12-byte nonce from crypto/rand,
// derives a one-off AES key from the master key and the salt, and seals the message with
// AES-GCM. The blob layout is salt ‖ nonce ‖ ciphertext ‖ tag, URL-safe base64 encoded.
//
// An optional authorization context is bound by prefixing it to the plaintext before
// sealing (see cryptoDomain.BindContext), so the context is protected by the same tag as
// the secret. A blob encrypted for one context cannot be decrypted as belonging to another.
//
// The service keeps no mutable state; the master key is shared read-only. It is safe for
// concurrent use from any number of goroutines.
type StringCipherService struct {
	masterKey *cryptoDomain.MasterKey
	deriver   KeyDeriver
	logger    *slog.Logger
}

// NewStringCipher creates a string cipher bound to masterKey.
// The deriver's key length must be a valid AES key size (16, 24 or 32 bytes).
func NewStringCipher(
	masterKey *cryptoDomain.MasterKey,
	deriver KeyDeriver,
	logger *slog.Logger,
) (*StringCipherService, error) {
	if masterKey == nil {
		return nil, cryptoDomain.ErrMasterKeyNotSet
	}
	switch deriver.KeyLength() {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", cryptoDomain.ErrInvalidKeySize, deriver.KeyLength())
	}

	return &StringCipherService{
		masterKey: masterKey,
		deriver:   deriver,
		logger:    logger,
	}, nil
}

// Encrypt encrypts plaintext without an authorization context.
func (s *StringCipherService) Encrypt(plaintext string) (string, error) {
	return s.encrypt(plaintext)
}

// EncryptWithContext encrypts plaintext bound to context. An empty context is still a
// context: the blob will only decrypt through DecryptWithContext(blob, "").
func (s *StringCipherService) EncryptWithContext(plaintext, context string) (string, error) {
	return s.encrypt(cryptoDomain.BindContext(context, plaintext))
}

// Decrypt decrypts a blob produced by Encrypt and returns the whole message unsplit.
func (s *StringCipherService) Decrypt(blob string) (string, error) {
	return s.decrypt(blob)
}

// DecryptWithContext decrypts a blob produced by EncryptWithContext and verifies that it
// was bound to expectedContext.
//
// Errors:
//   - ErrMalformedBlob: invalid base64, too short, or non UTF-8 payload
//   - ErrAuthenticationFailed: tag verification failed (logged at CRITICAL)
//   - ErrMalformedContext: payload carries no context separator
//   - ErrContextMismatch: payload is bound to a different context
func (s *StringCipherService) DecryptWithContext(blob, expectedContext string) (string, error) {
	message, err := s.decrypt(blob)
	if err != nil {
		return "", err
	}
	return cryptoDomain.UnbindContext(message, expectedContext)
}

func (s *StringCipherService) encrypt(message string) (string, error) {
	if !utf8.ValidString(message) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", cryptoDomain.ErrMalformedBlob)
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := s.cipherFor(salt)
	if err != nil {
		return "", err
	}

	sealed, nonce, err := aead.Encrypt([]byte(message), nil)
	if err != nil {
		return "", err
	}

	blob, err := cryptoDomain.NewEncryptionBlob(salt, nonce, sealed)
	if err != nil {
		return "", err
	}
	return blob.String(), nil
}

func (s *StringCipherService) decrypt(encoded string) (string, error) {
	blob, err := cryptoDomain.ParseEncryptionBlob(encoded)
	if err != nil {
		return "", err
	}

	aead, err := s.cipherFor(blob.Salt)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(blob.Sealed(), blob.Nonce, nil)
	if err != nil {
		logging.Critical(
			context.Background(),
			s.logger,
			"decryption failed: invalid authentication tag",
			slog.String("error_kind", string(cryptoDomain.KindAuthenticationFailure)),
		)
		return "", cryptoDomain.ErrAuthenticationFailed
	}

	if !utf8.Valid(plaintext) {
		cryptoDomain.Zero(plaintext)
		return "", fmt.Errorf("%w: payload is not valid UTF-8", cryptoDomain.ErrMalformedBlob)
	}
	return string(plaintext), nil
}

// cipherFor derives the per-blob key for salt and wraps it in an AES-GCM cipher.
func (s *StringCipherService) cipherFor(salt []byte) (AEAD, error) {
	masterKey := s.masterKey.Bytes()
	defer cryptoDomain.Zero(masterKey)

	derived := s.deriver.Derive(masterKey, salt)
	key := FitKeyLength(derived, s.deriver.KeyLength())
	defer cryptoDomain.Zero(derived, key)

	return NewAESGCM(key)
}
