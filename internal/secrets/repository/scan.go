package repository

import (
	"github.com/google/uuid"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// uuidScanner converts a raw column value into a UUID. PostgreSQL returns text UUIDs while
// MySQL stores them as BINARY(16).
type uuidScanner func(raw []byte) (uuid.UUID, error)

func scanUUID(raw []byte) (uuid.UUID, error) {
	return uuid.ParseBytes(raw)
}

func scanBinaryUUID(raw []byte) (uuid.UUID, error) {
	return uuid.FromBytes(raw)
}

// scanSecret reads one secrets row using scan, which is either (*sql.Row).Scan or
// (*sql.Rows).Scan.
func scanSecret(scan func(dest ...any) error, toUUID uuidScanner) (*secretsDomain.EncryptedSecret, error) {
	var (
		secret            secretsDomain.EncryptedSecret
		id, userID        []byte
		secretType        string
		encryptionContext []byte
	)

	if err := scan(
		&id,
		&userID,
		&secret.Name,
		&secret.Description,
		&secretType,
		&secret.EncryptedData,
		&encryptionContext,
		&secret.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if secret.ID, err = toUUID(id); err != nil {
		return nil, err
	}
	if secret.UserID, err = toUUID(userID); err != nil {
		return nil, err
	}
	if secret.EncryptionContext, err = secretsDomain.ParseEncryptionContext(encryptionContext); err != nil {
		return nil, err
	}
	secret.SecretType = secretsDomain.SecretType(secretType)
	secret.CreatedAt = secret.CreatedAt.UTC()

	return &secret, nil
}
