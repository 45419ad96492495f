// Package repository implements data persistence for secret management.
// Repositories support both PostgreSQL and MySQL and only ever see encrypted secret values.
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

// PostgreSQLSecretRepository implements Secret persistence for PostgreSQL databases.
type PostgreSQLSecretRepository struct {
	db *sql.DB
}

// Create inserts a new secret into the PostgreSQL database.
func (p *PostgreSQLSecretRepository) Create(
	ctx context.Context,
	secret *secretsDomain.EncryptedSecret,
) (*secretsDomain.SecretReference, error) {
	querier := database.GetTx(ctx, p.db)

	encryptionContext, err := secret.EncryptionContext.Serialize()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to serialize encryption context")
	}

	query := `INSERT INTO secrets (id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = querier.ExecContext(
		ctx,
		query,
		secret.ID,
		secret.UserID,
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
func (p *PostgreSQLSecretRepository) Get(
	ctx context.Context,
	secretID uuid.UUID,
) (*secretsDomain.EncryptedSecret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at
			  FROM secrets
			  WHERE id = $1`

	secret, err := scanSecret(querier.QueryRowContext(ctx, query, secretID).Scan, scanUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get secret")
	}

	return secret, nil
}

// ListByUser retrieves the secrets owned by userID, newest first.
func (p *PostgreSQLSecretRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.EncryptedSecret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, name, description, secret_type, encrypted_data, encryption_context, created_at
			  FROM secrets
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list secrets")
	}
	defer func() {
		_ = rows.Close()
	}()

	secrets := make([]*secretsDomain.EncryptedSecret, 0)
	for rows.Next() {
		secret, err := scanSecret(rows.Scan, scanUUID)
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

// NewPostgreSQLSecretRepository creates a new PostgreSQL Secret repository instance.
func NewPostgreSQLSecretRepository(db *sql.DB) *PostgreSQLSecretRepository {
	return &PostgreSQLSecretRepository{db: db}
}
