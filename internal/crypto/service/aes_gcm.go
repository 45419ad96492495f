package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
)

// AESGCMCipher implements AEAD with AES in Galois/Counter Mode.
//
// Security properties:
//   - 16, 24 or 32-byte keys (the string cipher always uses 32)
//   - 12-byte nonce, randomly generated per encryption
//   - 16-byte authentication tag, appended to the ciphertext
//
// A cipher instance wraps a single derived key. The string cipher builds a new one for
// every call because every call derives a new key.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-GCM cipher. It fails with ErrInvalidKeySize when the key is
// not a valid AES key length.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", cryptoDomain.ErrInvalidKeySize, len(key))
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh nonce from crypto/rand. The returned ciphertext
// has the 16-byte tag appended.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt verifies the tag and returns the plaintext. No plaintext is returned when
// verification fails.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce size: %d", len(nonce))
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
