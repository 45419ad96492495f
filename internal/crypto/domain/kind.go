package domain

import (
	"github.com/corpassist/secrets/internal/errors"
)

// ErrorKind classifies cipher failures so callers can switch on the failure without
// comparing against individual sentinels.
type ErrorKind string

const (
	// KindNone is returned for a nil error.
	KindNone ErrorKind = ""
	// KindMalformedBlob corresponds to ErrMalformedBlob.
	KindMalformedBlob ErrorKind = "malformed_blob"
	// KindAuthenticationFailure corresponds to ErrAuthenticationFailed.
	KindAuthenticationFailure ErrorKind = "authentication_failure"
	// KindMalformedContext corresponds to ErrMalformedContext.
	KindMalformedContext ErrorKind = "malformed_context"
	// KindContextMismatch corresponds to ErrContextMismatch.
	KindContextMismatch ErrorKind = "context_mismatch"
	// KindUnknown is any other error, e.g. an RNG failure.
	KindUnknown ErrorKind = "unknown"
)

// KindOf returns the ErrorKind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedBlob):
		return KindMalformedBlob
	case errors.Is(err, ErrAuthenticationFailed):
		return KindAuthenticationFailure
	case errors.Is(err, ErrMalformedContext):
		return KindMalformedContext
	case errors.Is(err, ErrContextMismatch):
		return KindContextMismatch
	default:
		return KindUnknown
	}
}
