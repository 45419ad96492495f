package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	apperrors "github.com/corpassist/secrets/internal/errors"

	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSSchemes lists the keeper URI schemes registered by this package.
var KMSSchemes = []string{"awskms", "azurekeyvault", "base64key", "gcpkms", "hashivault"}

// ErrUnsupportedKMSScheme is returned for key URIs whose scheme is not in KMSSchemes.
var ErrUnsupportedKMSScheme = apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported KMS key URI scheme")

type kmsService struct{}

// NewKMSService returns a cryptoDomain.KMSService that opens gocloud.dev keepers.
func NewKMSService() cryptoDomain.KMSService {
	return &kmsService{}
}

// OpenKeeper validates the scheme of keyURI and opens the matching keeper. The returned
// keeper must be closed by the caller.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	u, err := url.Parse(keyURI)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", ErrUnsupportedKMSScheme)
	}
	if !slices.Contains(KMSSchemes, u.Scheme) {
		return nil, fmt.Errorf("failed to open KMS keeper: %w: %q", ErrUnsupportedKMSScheme, u.Scheme)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
