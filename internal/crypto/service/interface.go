// Package service implements the context-bound string cipher: PBKDF2 key derivation,
// AES-256-GCM sealing and the fixed blob format, plus KMS access for the master key.
package service

// KeyDeriver turns the master key and a per-encryption salt into a symmetric key.
// Implementations must be deterministic: decryption rebuilds the key from the salt stored
// in the blob.
type KeyDeriver interface {
	// Derive returns a KeyLength()-byte key for the given master key and salt.
	Derive(masterKey, salt []byte) []byte

	// KeyLength is the size in bytes of the derived keys.
	KeyLength() int
}

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt seals plaintext with optional AAD under a fresh random nonce and returns
	// ciphertext with the tag appended, plus the nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt verifies the tag and opens ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}
