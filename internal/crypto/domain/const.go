package domain

// Wire format sizes of an EncryptionBlob.
//
// The layout is fixed: salt ‖ nonce ‖ ciphertext ‖ tag. There is no version byte, so any
// change to these sizes requires a new, explicitly discriminated encoding.
const (
	// SaltSize is the length of the per-encryption PBKDF2 salt.
	SaltSize = 16
	// NonceSize is the length of the AES-GCM nonce.
	NonceSize = 12
	// TagSize is the length of the AES-GCM authentication tag.
	TagSize = 16
	// MinBlobSize is the smallest valid decoded blob (empty ciphertext).
	MinBlobSize = SaltSize + NonceSize + TagSize
)

// Key derivation defaults.
const (
	// DefaultKeyLength is the AES-256 key size in bytes.
	DefaultKeyLength = 32
	// DefaultIterations is the PBKDF2 iteration count used when none is configured.
	DefaultIterations = 100_000
)

// ContextSeparator joins an authorization context and the plaintext it is bound to.
const ContextSeparator = ":"
