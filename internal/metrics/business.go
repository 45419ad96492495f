package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Secret operations recorded by the use case decorator.
const (
	OperationStore  = "secret_store"
	OperationReveal = "secret_reveal"
	OperationRemove = "secret_remove"
	OperationList   = "secret_list"
)

// operationBuckets are latency histogram boundaries in seconds. Store and reveal are
// dominated by PBKDF2, which takes tens of milliseconds at the default iteration count.
var operationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// BusinessMetrics records secret management activity.
type BusinessMetrics interface {
	// ObserveOperation counts one call to operation and records its latency, both labelled
	// with status (see StatusOf).
	ObserveOperation(ctx context.Context, operation, status string, duration time.Duration)

	// RecordCipherFailure counts a decryption failure of the given kind
	// (cryptoDomain.ErrorKind), e.g. "context_mismatch" or "authentication_failure".
	RecordCipherFailure(ctx context.Context, operation, kind string)
}

type businessMetrics struct {
	operations     metric.Int64Counter
	latency        metric.Float64Histogram
	cipherFailures metric.Int64Counter
}

// NewBusinessMetrics creates the instruments on a meter named namespace. Instrument names
// are prefixed with namespace, e.g. "secrets_operations_total".
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Secret operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	latency, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Secret operation latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(operationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	cipherFailures, err := meter.Int64Counter(
		fmt.Sprintf("%s_cipher_failures_total", namespace),
		metric.WithDescription("Decryption failures by kind"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher failure counter: %w", err)
	}

	return &businessMetrics{
		operations:     operations,
		latency:        latency,
		cipherFailures: cipherFailures,
	}, nil
}

func (b *businessMetrics) ObserveOperation(
	ctx context.Context,
	operation, status string,
	duration time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	b.operations.Add(ctx, 1, attrs)
	b.latency.Record(ctx, duration.Seconds(), attrs)
}

func (b *businessMetrics) RecordCipherFailure(ctx context.Context, operation, kind string) {
	b.cipherFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("kind", kind),
	))
}

// NoOpBusinessMetrics discards everything. It is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) ObserveOperation(context.Context, string, string, time.Duration) {}

func (n *NoOpBusinessMetrics) RecordCipherFailure(context.Context, string, string) {}
