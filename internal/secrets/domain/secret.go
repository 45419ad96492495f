// Package domain defines the core domain models and types for secret management.
// Secret values are encrypted with a context that names their owner, so a stored
// ciphertext only decrypts on behalf of the user it was created for.
package domain

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SecretType classifies what kind of credential a secret holds.
type SecretType string

// Supported secret types.
const (
	SecretTypeAPIKey     SecretType = "apikey"
	SecretTypeOAuthToken SecretType = "oauth-token"
	SecretTypePassword   SecretType = "password"
)

// SecretTypes lists every supported SecretType.
var SecretTypes = []SecretType{SecretTypeAPIKey, SecretTypeOAuthToken, SecretTypePassword}

// Validate returns ErrInvalidSecretType for unknown types.
func (t SecretType) Validate() error {
	for _, known := range SecretTypes {
		if t == known {
			return nil
		}
	}
	return ErrInvalidSecretType
}

// String implements fmt.Stringer.
func (t SecretType) String() string {
	return string(t)
}

// StoreSecretCommand carries everything needed to store a new secret.
type StoreSecretCommand struct {
	UserID      uuid.UUID
	Name        string
	Description string
	SecretType  SecretType
	// SecretData is the plaintext value. It never leaves the process unencrypted.
	SecretData string `json:"-"`
}

// LogValue implements slog.LogValuer and omits SecretData.
func (c StoreSecretCommand) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", c.UserID.String()),
		slog.String("name", c.Name),
		slog.String("secret_type", c.SecretType.String()),
	)
}

// SecretReference identifies a stored secret without exposing its value.
type SecretReference struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	SecretType  SecretType
	CreatedAt   time.Time
}

// EncryptedSecret is the only representation of a secret that is ever persisted.
type EncryptedSecret struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	SecretType  SecretType
	// EncryptedData is the URL-safe base64 encryption blob.
	EncryptedData string
	// EncryptionContext is the context the blob was bound to, stored in the clear.
	EncryptionContext EncryptionContext
	CreatedAt         time.Time
}

// Reference returns the metadata view of the secret.
func (s *EncryptedSecret) Reference() *SecretReference {
	return &SecretReference{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		SecretType:  s.SecretType,
		CreatedAt:   s.CreatedAt,
	}
}

// SecretRevealed holds a decrypted secret. It lives only for the duration of a request and
// is never persisted or logged.
type SecretRevealed struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	SecretType  SecretType
	SecretData  string `json:"-"`
}

// LogValue implements slog.LogValuer and omits SecretData.
func (s SecretRevealed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.ID.String()),
		slog.String("user_id", s.UserID.String()),
		slog.String("name", s.Name),
		slog.String("secret_type", s.SecretType.String()),
	)
}

// EncryptionContext is the authorization context a secret is bound to.
type EncryptionContext map[string]string

// NewUserEncryptionContext returns the context binding a secret to userID.
func NewUserEncryptionContext(userID uuid.UUID) EncryptionContext {
	return EncryptionContext{"user_id": userID.String()}
}

// Serialize renders the context as compact JSON with sorted keys. The output is
// deterministic, so serializing the stored context reproduces the string used at
// encryption time.
func (c EncryptionContext) Serialize() (string, error) {
	if c == nil {
		c = EncryptionContext{}
	}
	b, err := json.Marshal(map[string]string(c))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseEncryptionContext decodes a context produced by Serialize.
func ParseEncryptionContext(data []byte) (EncryptionContext, error) {
	ctx := EncryptionContext{}
	if len(data) == 0 {
		return ctx, nil
	}
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}
