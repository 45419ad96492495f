package metrics

import (
	apperrors "github.com/corpassist/secrets/internal/errors"
)

// Operation status label values.
const (
	StatusSuccess     = "success"
	StatusDenied      = "denied"
	StatusUnsupported = "unsupported"
	StatusError       = "error"
)

// StatusOf maps an operation result to its status label. Ownership denials are counted
// apart from failures so cross-user access attempts show up on their own series.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case apperrors.Is(err, apperrors.ErrForbidden):
		return StatusDenied
	case apperrors.Is(err, apperrors.ErrNotImplemented):
		return StatusUnsupported
	default:
		return StatusError
	}
}
