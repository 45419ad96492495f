package service

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
)

// PBKDF2KeyDeriver derives keys with PBKDF2-HMAC-SHA256.
//
// It holds only its immutable parameters and is safe for concurrent use.
type PBKDF2KeyDeriver struct {
	iterations int
	keyLength  int
}

// NewPBKDF2KeyDeriver creates a deriver with the given iteration count and output length.
// Both must be positive.
func NewPBKDF2KeyDeriver(iterations, keyLength int) (*PBKDF2KeyDeriver, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: %d", cryptoDomain.ErrInvalidIterations, iterations)
	}
	if keyLength < 1 {
		return nil, fmt.Errorf("%w: %d", cryptoDomain.ErrInvalidKeySize, keyLength)
	}
	return &PBKDF2KeyDeriver{iterations: iterations, keyLength: keyLength}, nil
}

// Derive implements KeyDeriver.
func (d *PBKDF2KeyDeriver) Derive(masterKey, salt []byte) []byte {
	return pbkdf2.Key(masterKey, salt, d.iterations, d.keyLength, sha256.New)
}

// KeyLength implements KeyDeriver.
func (d *PBKDF2KeyDeriver) KeyLength() int {
	return d.keyLength
}

// Iterations returns the configured PBKDF2 iteration count.
func (d *PBKDF2KeyDeriver) Iterations() int {
	return d.iterations
}

// FitKeyLength returns key adjusted to exactly n bytes: longer keys are truncated and
// shorter keys are right-padded with zero bytes. A key that already has the right length
// is returned unchanged. The adjustment keeps blobs compatible with externally supplied
// key material; it adds no security.
func FitKeyLength(key []byte, n int) []byte {
	if len(key) == n {
		return key
	}
	out := make([]byte, n)
	copy(out, key)
	return out
}
