package domain

import (
	"encoding/base64"
	"fmt"
)

// EncryptionBlob is the decoded form of a stored ciphertext.
//
// Its textual encoding is URL-safe base64 (with padding) of
//
//	salt(16) ‖ nonce(12) ‖ ciphertext(N) ‖ tag(16)
//
// so a blob carries everything needed to decrypt it except the master key.
type EncryptionBlob struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// ParseEncryptionBlob decodes a blob string and splits it at the fixed offsets.
// It fails with ErrMalformedBlob on invalid base64 or when the decoded length is below
// MinBlobSize.
func ParseEncryptionBlob(encoded string) (EncryptionBlob, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return EncryptionBlob{}, fmt.Errorf("%w: invalid base64", ErrMalformedBlob)
	}
	if len(raw) < MinBlobSize {
		return EncryptionBlob{}, fmt.Errorf(
			"%w: expected at least %d bytes, got %d",
			ErrMalformedBlob,
			MinBlobSize,
			len(raw),
		)
	}

	tagStart := len(raw) - TagSize
	return EncryptionBlob{
		Salt:       raw[:SaltSize],
		Nonce:      raw[SaltSize : SaltSize+NonceSize],
		Ciphertext: raw[SaltSize+NonceSize : tagStart],
		Tag:        raw[tagStart:],
	}, nil
}

// NewEncryptionBlob assembles a blob from a salt, a nonce and AEAD output in which the tag
// is appended to the ciphertext (the layout produced by cipher.AEAD.Seal).
func NewEncryptionBlob(salt, nonce, sealed []byte) (EncryptionBlob, error) {
	if len(salt) != SaltSize || len(nonce) != NonceSize || len(sealed) < TagSize {
		return EncryptionBlob{}, ErrMalformedBlob
	}
	tagStart := len(sealed) - TagSize
	return EncryptionBlob{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: sealed[:tagStart],
		Tag:        sealed[tagStart:],
	}, nil
}

// Sealed returns ciphertext ‖ tag, the input expected by cipher.AEAD.Open.
func (b EncryptionBlob) Sealed() []byte {
	out := make([]byte, 0, len(b.Ciphertext)+len(b.Tag))
	out = append(out, b.Ciphertext...)
	return append(out, b.Tag...)
}

// Bytes returns the raw concatenated layout.
func (b EncryptionBlob) Bytes() []byte {
	out := make([]byte, 0, len(b.Salt)+len(b.Nonce)+len(b.Ciphertext)+len(b.Tag))
	out = append(out, b.Salt...)
	out = append(out, b.Nonce...)
	out = append(out, b.Ciphertext...)
	return append(out, b.Tag...)
}

// String returns the URL-safe base64 encoding of the blob.
func (b EncryptionBlob) String() string {
	return base64.URLEncoding.EncodeToString(b.Bytes())
}
