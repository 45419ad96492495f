package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	"github.com/corpassist/secrets/internal/metrics"
	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// secretUseCaseWithMetrics decorates SecretUseCase with metrics instrumentation.
type secretUseCaseWithMetrics struct {
	next    SecretUseCase
	metrics metrics.BusinessMetrics
}

// NewSecretUseCaseWithMetrics wraps a SecretUseCase with metrics recording.
func NewSecretUseCaseWithMetrics(useCase SecretUseCase, m metrics.BusinessMetrics) SecretUseCase {
	return &secretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record observes one call. Cipher failures are additionally counted by kind so that
// context mismatches and tampered blobs are visible apart from ordinary errors.
func (s *secretUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	s.metrics.ObserveOperation(ctx, operation, metrics.StatusOf(err), time.Since(start))

	if kind := cryptoDomain.KindOf(err); kind != cryptoDomain.KindNone && kind != cryptoDomain.KindUnknown {
		s.metrics.RecordCipherFailure(ctx, operation, string(kind))
	}
}

// StoreSecret records metrics for secret creation.
func (s *secretUseCaseWithMetrics) StoreSecret(
	ctx context.Context,
	cmd secretsDomain.StoreSecretCommand,
) (*secretsDomain.SecretReference, error) {
	start := time.Now()
	ref, err := s.next.StoreSecret(ctx, cmd)
	s.record(ctx, metrics.OperationStore, start, err)
	return ref, err
}

// RevealSecret records metrics for secret decryption.
func (s *secretUseCaseWithMetrics) RevealSecret(
	ctx context.Context,
	secretID, requestingUserID uuid.UUID,
) (*secretsDomain.SecretRevealed, error) {
	start := time.Now()
	revealed, err := s.next.RevealSecret(ctx, secretID, requestingUserID)
	s.record(ctx, metrics.OperationReveal, start, err)
	return revealed, err
}

// RemoveSecret records metrics for secret removal attempts.
func (s *secretUseCaseWithMetrics) RemoveSecret(ctx context.Context, secretID, requestingUserID uuid.UUID) error {
	start := time.Now()
	err := s.next.RemoveSecret(ctx, secretID, requestingUserID)
	s.record(ctx, metrics.OperationRemove, start, err)
	return err
}

// ListSecrets records metrics for secret listing.
func (s *secretUseCaseWithMetrics) ListSecrets(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.SecretReference, error) {
	start := time.Now()
	refs, err := s.next.ListSecrets(ctx, userID, offset, limit)
	s.record(ctx, metrics.OperationList, start, err)
	return refs, err
}
