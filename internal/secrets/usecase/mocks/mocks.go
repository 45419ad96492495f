// Package mocks provides mock implementations of the secrets use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// MockSecretRepository is a mock implementation of SecretRepository for testing.
type MockSecretRepository struct {
	mock.Mock
}

// NewMockSecretRepository creates a MockSecretRepository whose expectations are asserted
// when the test finishes.
func NewMockSecretRepository(t mock.TestingT) *MockSecretRepository {
	m := &MockSecretRepository{}
	m.Test(t)
	registerCleanup(t, func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method of SecretRepository.
func (m *MockSecretRepository) Create(
	ctx context.Context,
	secret *secretsDomain.EncryptedSecret,
) (*secretsDomain.SecretReference, error) {
	args := m.Called(ctx, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.SecretReference), args.Error(1)
}

// Get mocks the Get method of SecretRepository.
func (m *MockSecretRepository) Get(ctx context.Context, secretID uuid.UUID) (*secretsDomain.EncryptedSecret, error) {
	args := m.Called(ctx, secretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.EncryptedSecret), args.Error(1)
}

// ListByUser mocks the ListByUser method of SecretRepository.
func (m *MockSecretRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.EncryptedSecret, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*secretsDomain.EncryptedSecret), args.Error(1)
}

// MockStringCipher is a mock implementation of StringCipher for testing.
type MockStringCipher struct {
	mock.Mock
}

// NewMockStringCipher creates a MockStringCipher whose expectations are asserted when the
// test finishes.
func NewMockStringCipher(t mock.TestingT) *MockStringCipher {
	m := &MockStringCipher{}
	m.Test(t)
	registerCleanup(t, func() { m.AssertExpectations(t) })
	return m
}

// EncryptWithContext mocks the EncryptWithContext method of StringCipher.
func (m *MockStringCipher) EncryptWithContext(plaintext, context string) (string, error) {
	args := m.Called(plaintext, context)
	return args.String(0), args.Error(1)
}

// DecryptWithContext mocks the DecryptWithContext method of StringCipher.
func (m *MockStringCipher) DecryptWithContext(blob, expectedContext string) (string, error) {
	args := m.Called(blob, expectedContext)
	return args.String(0), args.Error(1)
}

// MockSecretUseCase is a mock implementation of SecretUseCase for testing.
type MockSecretUseCase struct {
	mock.Mock
}

// NewMockSecretUseCase creates a MockSecretUseCase whose expectations are asserted when the
// test finishes.
func NewMockSecretUseCase(t mock.TestingT) *MockSecretUseCase {
	m := &MockSecretUseCase{}
	m.Test(t)
	registerCleanup(t, func() { m.AssertExpectations(t) })
	return m
}

// StoreSecret mocks the StoreSecret method of SecretUseCase.
func (m *MockSecretUseCase) StoreSecret(
	ctx context.Context,
	cmd secretsDomain.StoreSecretCommand,
) (*secretsDomain.SecretReference, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.SecretReference), args.Error(1)
}

// RevealSecret mocks the RevealSecret method of SecretUseCase.
func (m *MockSecretUseCase) RevealSecret(
	ctx context.Context,
	secretID, requestingUserID uuid.UUID,
) (*secretsDomain.SecretRevealed, error) {
	args := m.Called(ctx, secretID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.SecretRevealed), args.Error(1)
}

// RemoveSecret mocks the RemoveSecret method of SecretUseCase.
func (m *MockSecretUseCase) RemoveSecret(ctx context.Context, secretID, requestingUserID uuid.UUID) error {
	args := m.Called(ctx, secretID, requestingUserID)
	return args.Error(0)
}

// ListSecrets mocks the ListSecrets method of SecretUseCase.
func (m *MockSecretUseCase) ListSecrets(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.SecretReference, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*secretsDomain.SecretReference), args.Error(1)
}

func registerCleanup(t mock.TestingT, fn func()) {
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(fn)
	}
}
