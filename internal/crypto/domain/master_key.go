package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
)

// KMSKeeper is the subset of *secrets.Keeper (gocloud.dev/secrets) used to wrap and unwrap
// the master key.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers by URI (gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key://).
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}

// MasterKey is the process-wide secret every per-encryption key is derived from.
//
// A MasterKey is immutable once constructed: NewMasterKey copies its input and Bytes
// returns a copy, so no caller can mutate the shared material. It is built once at
// startup and passed by reference to the string cipher. It redacts itself in fmt and slog
// output and has no serialized form.
type MasterKey struct {
	key []byte
}

// NewMasterKey creates a MasterKey from raw key material. The input slice is copied and
// may be zeroed by the caller afterwards.
func NewMasterKey(raw []byte) (*MasterKey, error) {
	if len(raw) == 0 {
		return nil, ErrMasterKeyNotSet
	}
	key := make([]byte, len(raw))
	copy(key, raw)
	return &MasterKey{key: key}, nil
}

// Bytes returns a copy of the key material. Callers should Zero it when done.
func (m *MasterKey) Bytes() []byte {
	out := make([]byte, len(m.key))
	copy(out, m.key)
	return out
}

// Len returns the length of the key material in bytes.
func (m *MasterKey) Len() int {
	return len(m.key)
}

// String implements fmt.Stringer without exposing the key.
func (m *MasterKey) String() string {
	return "MasterKey([REDACTED])"
}

// GoString implements fmt.GoStringer so %#v does not print the key either.
func (m *MasterKey) GoString() string {
	return m.String()
}

// LogValue implements slog.LogValuer.
func (m *MasterKey) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}

// LoadMasterKey builds the master key from configuration.
//
// When kmsKeyURI is empty, rawKey is used verbatim as UTF-8 bytes. Otherwise rawKey must be
// the base64 encoding of a KMS ciphertext, which is unwrapped through kmsService. The
// intermediate plaintext buffer is zeroed before returning.
func LoadMasterKey(
	ctx context.Context,
	rawKey string,
	kmsKeyURI string,
	kmsService KMSService,
	logger *slog.Logger,
) (*MasterKey, error) {
	if rawKey == "" {
		return nil, ErrMasterKeyNotSet
	}

	if kmsKeyURI == "" {
		logger.Warn("loading master key from plaintext configuration; set KMS_KEY_URI in production")
		return NewMasterKey([]byte(rawKey))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(rawKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMasterKeyBase64, err)
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap master key with KMS: %w", err)
	}
	defer Zero(plaintext)

	logger.Info("master key unwrapped with KMS")
	return NewMasterKey(plaintext)
}
