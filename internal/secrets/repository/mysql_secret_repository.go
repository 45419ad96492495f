package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/corpassist/secrets/internal/database"
	apperrors "github.com/corpassist/secrets/internal/errors"
	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// MySQLSecretRepository implements Secret persistence for MySQL databases.
type MySQLSecretRepository struct {
	db *sql.DB
}

// Create inserts a new secret into the MySQL database.
func (m *MySQLSecretRepository) Create(
	ctx context.Context,
	secret *secretsDomain.EncryptedSecret,
) (*secretsDomain.SecretReference, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := secret.ID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal secret id")
	}

	userID, err := secret.UserID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	encryptionContext, err := secret.EncryptionContext.Serialize()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to serialize encryption context")
	}

	query := `INSERT INTO secrets (id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
		secret.Name,
		secret.Description,
		string(secret.SecretType),
		secret.EncryptedData,
		encryptionContext,
		secret.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, secretsDomain.ErrSecretAlreadyExists
		}
		return nil, apperrors.Wrap(err, "failed to create secret")
	}

	return secret.Reference(), nil
}

// Get retrieves a secret by its id.
func (m *MySQLSecretRepository) Get(
	ctx context.Context,
	secretID uuid.UUID,
) (*secretsDomain.EncryptedSecret, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := secretID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal secret id")
	}

	query := `SELECT id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at
			  FROM secrets
			  WHERE id = ?`

	secret, err := scanSecret(querier.QueryRowContext(ctx, query, id).Scan, scanBinaryUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get secret")
	}

	return secret, nil
}

// ListByUser retrieves the secrets owned by userID, newest first.
func (m *MySQLSecretRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.EncryptedSecret, error) {
	querier := database.GetTx(ctx, m.db)

	uid, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at
			  FROM secrets
			  WHERE user_id = ?
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, uid, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list secrets")
	}
	defer func() {
		_ = rows.Close()
	}()

	secrets := make([]*secretsDomain.EncryptedSecret, 0)
	for rows.Next() {
		secret, err := scanSecret(rows.Scan, scanBinaryUUID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan secret")
		}
		secrets = append(secrets, secret)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate secrets")
	}

	return secrets, nil
}

// NewMySQLSecretRepository creates a new MySQL Secret repository instance.
func NewMySQLSecretRepository(db *sql.DB) *MySQLSecretRepository {
	return &MySQLSecretRepository{db: db}
}
