package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/corpassist/secrets/internal/errors"
	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

var secretColumns = []string{
	"id", "user_id", "name", "description", "secret_type", "encrypted_data", "encryption_context", "created_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func newEncryptedSecret() *secretsDomain.EncryptedSecret {
	userID := uuid.Must(uuid.NewV7())
	return &secretsDomain.EncryptedSecret{
		ID:                uuid.Must(uuid.NewV7()),
		UserID:            userID,
		Name:              "github",
		Description:       "ci token",
		SecretType:        secretsDomain.SecretTypeAPIKey,
		EncryptedData:     "c2FsdHNhbHRzYWx0c2FsdG5vbmNlbm9uY2Vu",
		EncryptionContext: secretsDomain.NewUserEncryptionContext(userID),
		CreatedAt:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPostgreSQLSecretRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		secret := newEncryptedSecret()

		mock.ExpectExec("INSERT INTO secrets").
			WithArgs(
				secret.ID,
				secret.UserID,
				"github",
				"ci token",
				"apikey",
				secret.EncryptedData,
				`{"user_id":"`+secret.UserID.String()+`"}`,
				secret.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ref, err := NewPostgreSQLSecretRepository(db).Create(ctx, secret)

		require.NoError(t, err)
		assert.Equal(t, secret.ID, ref.ID)
		assert.Equal(t, secret.UserID, ref.UserID)
		assert.Equal(t, "github", ref.Name)
		assert.Equal(t, secret.CreatedAt, ref.CreatedAt)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO secrets").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "secrets_user_id_name_key"})

		ref, err := NewPostgreSQLSecretRepository(db).Create(ctx, newEncryptedSecret())

		assert.Nil(t, ref)
		assert.ErrorIs(t, err, secretsDomain.ErrSecretAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO secrets").WillReturnError(errors.New("connection reset"))

		_, err := NewPostgreSQLSecretRepository(db).Create(ctx, newEncryptedSecret())

		assert.ErrorContains(t, err, "failed to create secret")
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestPostgreSQLSecretRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		secret := newEncryptedSecret()

		rows := sqlmock.NewRows(secretColumns).AddRow(
			secret.ID.String(),
			secret.UserID.String(),
			secret.Name,
			secret.Description,
			"apikey",
			secret.EncryptedData,
			// JSONB comes back normalized with a space after the colon.
			`{"user_id": "`+secret.UserID.String()+`"}`,
			secret.CreatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM secrets WHERE id = \\$1").
			WithArgs(secret.ID).
			WillReturnRows(rows)

		got, err := NewPostgreSQLSecretRepository(db).Get(ctx, secret.ID)

		require.NoError(t, err)
		assert.Equal(t, secret, got)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		secretID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT (.+) FROM secrets").
			WithArgs(secretID).
			WillReturnRows(sqlmock.NewRows(secretColumns))

		got, err := NewPostgreSQLSecretRepository(db).Get(ctx, secretID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, secretsDomain.ErrSecretNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_CorruptContext", func(t *testing.T) {
		db, mock := newMockDB(t)
		secret := newEncryptedSecret()

		rows := sqlmock.NewRows(secretColumns).AddRow(
			secret.ID.String(), secret.UserID.String(), secret.Name, secret.Description,
			"apikey", secret.EncryptedData, `not-json`, secret.CreatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM secrets").WillReturnRows(rows)

		_, err := NewPostgreSQLSecretRepository(db).Get(ctx, secret.ID)

		assert.ErrorContains(t, err, "failed to get secret")
	})
}

func TestPostgreSQLSecretRepository_ListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		first := newEncryptedSecret()
		second := newEncryptedSecret()
		second.UserID = first.UserID
		second.EncryptionContext = first.EncryptionContext
		second.Name = "stripe"

		rows := sqlmock.NewRows(secretColumns)
		for _, s := range []*secretsDomain.EncryptedSecret{first, second} {
			ctxJSON, err := s.EncryptionContext.Serialize()
			require.NoError(t, err)
			rows.AddRow(
				s.ID.String(), s.UserID.String(), s.Name, s.Description,
				string(s.SecretType), s.EncryptedData, ctxJSON, s.CreatedAt,
			)
		}

		mock.ExpectQuery("SELECT (.+) FROM secrets WHERE user_id = \\$1 (.+) LIMIT \\$2 OFFSET \\$3").
			WithArgs(first.UserID, 20, 40).
			WillReturnRows(rows)

		got, err := NewPostgreSQLSecretRepository(db).ListByUser(ctx, first.UserID, 40, 20)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0])
		assert.Equal(t, second, got[1])
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		userID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT (.+) FROM secrets").WillReturnRows(sqlmock.NewRows(secretColumns))

		got, err := NewPostgreSQLSecretRepository(db).ListByUser(ctx, userID, 0, 50)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Error_Query", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM secrets").WillReturnError(errors.New("timeout"))

		_, err := NewPostgreSQLSecretRepository(db).ListByUser(ctx, uuid.Must(uuid.NewV7()), 0, 50)

		assert.ErrorContains(t, err, "failed to list secrets")
	})
}

func TestMySQLSecretRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		secret := newEncryptedSecret()

		id, err := secret.ID.MarshalBinary()
		require.NoError(t, err)
		userID, err := secret.UserID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO secrets").
			WithArgs(
				id,
				userID,
				"github",
				"ci token",
				"apikey",
				secret.EncryptedData,
				`{"user_id":"`+secret.UserID.String()+`"}`,
				secret.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ref, err := NewMySQLSecretRepository(db).Create(ctx, secret)

		require.NoError(t, err)
		assert.Equal(t, secret.ID, ref.ID)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO secrets").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		_, err := NewMySQLSecretRepository(db).Create(ctx, newEncryptedSecret())

		assert.ErrorIs(t, err, secretsDomain.ErrSecretAlreadyExists)
	})
}

func TestMySQLSecretRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		secret := newEncryptedSecret()

		id, err := secret.ID.MarshalBinary()
		require.NoError(t, err)
		userID, err := secret.UserID.MarshalBinary()
		require.NoError(t, err)

		rows := sqlmock.NewRows(secretColumns).AddRow(
			id, userID, secret.Name, secret.Description, "apikey", secret.EncryptedData,
			`{"user_id": "`+secret.UserID.String()+`"}`, secret.CreatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM secrets WHERE id = \\?").
			WithArgs(id).
			WillReturnRows(rows)

		got, err := NewMySQLSecretRepository(db).Get(ctx, secret.ID)

		require.NoError(t, err)
		assert.Equal(t, secret, got)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM secrets").WillReturnRows(sqlmock.NewRows(secretColumns))

		_, err := NewMySQLSecretRepository(db).Get(ctx, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, secretsDomain.ErrSecretNotFound)
	})
}

func TestMySQLSecretRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	secret := newEncryptedSecret()

	id, err := secret.ID.MarshalBinary()
	require.NoError(t, err)
	userID, err := secret.UserID.MarshalBinary()
	require.NoError(t, err)

	rows := sqlmock.NewRows(secretColumns).AddRow(
		id, userID, secret.Name, secret.Description, "apikey", secret.EncryptedData,
		`{"user_id":"`+secret.UserID.String()+`"}`, secret.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM secrets WHERE user_id = \\? (.+) LIMIT \\? OFFSET \\?").
		WithArgs(userID, 10, 0).
		WillReturnRows(rows)

	got, err := NewMySQLSecretRepository(db).ListByUser(ctx, secret.UserID, 0, 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, secret, got[0])
}
