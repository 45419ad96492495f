package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
)

// masterKeySize is the amount of entropy in a generated master key.
const masterKeySize = 32

// RunCreateMasterKey generates a new master key and writes the matching configuration to w.
//
// Without kmsKeyURI the key is printed as ENCRYPTION_KEY in plaintext (URL-safe base64 of
// 32 random bytes, used verbatim by the service). With kmsKeyURI the same value is wrapped
// by the KMS keeper and ENCRYPTION_KEY holds the base64 ciphertext, alongside KMS_KEY_URI.
// The generated key material is zeroed after use.
func RunCreateMasterKey(
	ctx context.Context,
	kmsService cryptoDomain.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	raw := make([]byte, masterKeySize)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	encoded := []byte(base64.URLEncoding.EncodeToString(raw))
	defer cryptoDomain.Zero(encoded)

	if kmsKeyURI == "" {
		logger.Warn("master key generated without KMS; do not use plaintext keys in production")
		_, _ = fmt.Fprintln(writer, "# Master key configuration (plaintext mode)")
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", encoded)
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, encoded)
	if err != nil {
		return fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}

	logger.Info("master key generated and wrapped with KMS")
	_, _ = fmt.Fprintln(writer, "# Master key configuration (KMS mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))
	return nil
}
