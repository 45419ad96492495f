// Package domain defines core domain models and errors for secrets.
package domain

import (
	"github.com/corpassist/secrets/internal/errors"
)

// Secret-specific error definitions.
var (
	// ErrSecretNotFound indicates no secret exists with the given id.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrSecretAlreadyExists indicates the user already owns a secret with the same name.
	ErrSecretAlreadyExists = errors.Wrap(errors.ErrConflict, "secret with this name already exists")

	// ErrPermissionDenied indicates the requesting user does not own the secret.
	ErrPermissionDenied = errors.Wrap(errors.ErrForbidden, "user does not have access to this secret")

	// ErrSecretRemovalUnsupported is returned by RemoveSecret. Removal has no defined
	// semantics yet, so nothing is ever deleted.
	ErrSecretRemovalUnsupported = errors.Wrap(errors.ErrNotImplemented, "secret removal is not supported")

	// ErrInvalidSecretType indicates a secret type outside apikey, oauth-token and password.
	ErrInvalidSecretType = errors.Wrap(errors.ErrInvalidInput, "invalid secret type")
)
