package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/corpassist/secrets/internal/auth/domain"
	apperrors "github.com/corpassist/secrets/internal/errors"
)

const (
	testSecret = "super-secret-key-for-testing-purposes-1234567890"
	testIssuer = "secrets-test"
)

func newTestTokenService(t *testing.T, now time.Time) *jwtTokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, testIssuer, 15*time.Minute)
	require.NoError(t, err)

	impl := svc.(*jwtTokenService)
	impl.now = func() time.Time { return now }
	return impl
}

func TestNewTokenService(t *testing.T) {
	t.Run("Error_EmptySecret", func(t *testing.T) {
		svc, err := NewTokenService("", testIssuer, time.Minute)
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, authDomain.ErrSigningKeyNotSet)
	})
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, now)
	userID := uuid.Must(uuid.NewV7())

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.Equal(t, userID, token.UserID)
	assert.WithinDuration(t, now.Add(15*time.Minute), token.ExpiresAt, 2*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token.Value, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	got, err := svc.Verify(token.Value)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Verify(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, now)
	userID := uuid.Must(uuid.NewV7())

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return signed
	}

	validClaims := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}
	}

	t.Run("Error_Expired", func(t *testing.T) {
		token, err := svc.Issue(userID)
		require.NoError(t, err)

		svc.now = func() time.Time { return now.Add(time.Hour) }
		defer func() { svc.now = func() time.Time { return now } }()

		_, err = svc.Verify(token.Value)
		assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Error_WrongSecret", func(t *testing.T) {
		claims := validClaims()
		token := sign(t, jwt.SigningMethodHS256, []byte("another-secret"), claims)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_WrongIssuer", func(t *testing.T) {
		claims := validClaims()
		claims.Issuer = "someone-else"
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_WrongAlgorithm", func(t *testing.T) {
		claims := validClaims()
		token := sign(t, jwt.SigningMethodHS512, []byte(testSecret), claims)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingExpiry", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = nil
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_SubjectNotUUID", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = "alice"
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidSubject)
	})

	t.Run("Error_Garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.jwt")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}
