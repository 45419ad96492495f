package domain

import (
	"github.com/corpassist/secrets/internal/errors"
)

// Cryptographic failure definitions.
//
// All of them are terminal: the same inputs always fail the same way, so retrying is
// pointless. Messages never include key material, ciphertext or plaintext.
var (
	// ErrMalformedBlob indicates the blob is not URL-safe base64, is shorter than
	// MinBlobSize, or decrypts to bytes that are not valid UTF-8. Length checks happen
	// before any key derivation.
	ErrMalformedBlob = errors.Wrap(errors.ErrInvalidInput, "malformed encryption blob")

	// ErrAuthenticationFailed indicates the AES-GCM tag did not verify. Either the blob was
	// tampered with or it was produced under a different master key.
	ErrAuthenticationFailed = errors.Wrap(
		errors.ErrInvalidInput,
		"authentication failed - data may have been tampered with",
	)

	// ErrMalformedContext indicates a context was expected but the decrypted message has
	// no context separator.
	ErrMalformedContext = errors.Wrap(errors.ErrInvalidInput, "no context separator found in decrypted text")

	// ErrContextMismatch indicates the context bound into the ciphertext differs from the
	// expected one.
	ErrContextMismatch = errors.Wrap(errors.ErrInvalidInput, "encryption context mismatch")

	// ErrInvalidKeySize indicates a key length the AES cipher cannot use.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidIterations indicates a non-positive PBKDF2 iteration count.
	ErrInvalidIterations = errors.Wrap(errors.ErrInvalidInput, "invalid key derivation iterations")

	// ErrMasterKeyNotSet indicates ENCRYPTION_KEY is empty.
	ErrMasterKeyNotSet = errors.New("ENCRYPTION_KEY is not set")

	// ErrInvalidMasterKeyBase64 indicates a KMS-wrapped master key is not valid base64.
	ErrInvalidMasterKeyBase64 = errors.New("invalid base64 for KMS-wrapped master key")
)
