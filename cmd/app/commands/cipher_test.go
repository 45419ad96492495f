package commands

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	cryptoService "github.com/corpassist/secrets/internal/crypto/service"
)

func newTestCipher(t *testing.T) *cryptoService.StringCipherService {
	t.Helper()
	masterKey, err := cryptoDomain.NewMasterKey([]byte("command-test-master-key"))
	require.NoError(t, err)
	// A low iteration count keeps the test fast; the format is unaffected.
	deriver, err := cryptoService.NewPBKDF2KeyDeriver(1000, 32)
	require.NoError(t, err)
	cipher, err := cryptoService.NewStringCipher(
		masterKey,
		deriver,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	return cipher
}

func TestRunEncryptDecrypt(t *testing.T) {
	cipher := newTestCipher(t)

	t.Run("without-context", func(t *testing.T) {
		var encrypted bytes.Buffer
		require.NoError(t, RunEncrypt(cipher, &encrypted, "hunter2", "", false))

		var decrypted bytes.Buffer
		blob := strings.TrimSpace(encrypted.String())
		require.NoError(t, RunDecrypt(cipher, &decrypted, blob, "", false))
		assert.Equal(t, "hunter2\n", decrypted.String())
	})

	t.Run("with-context", func(t *testing.T) {
		var encrypted bytes.Buffer
		require.NoError(t, RunEncrypt(cipher, &encrypted, "sk-live-123", `{"user_id":"a"}`, true))
		blob := strings.TrimSpace(encrypted.String())

		var decrypted bytes.Buffer
		require.NoError(t, RunDecrypt(cipher, &decrypted, blob, `{"user_id":"a"}`, true))
		assert.Equal(t, "sk-live-123\n", decrypted.String())
	})

	t.Run("context-mismatch", func(t *testing.T) {
		var encrypted bytes.Buffer
		require.NoError(t, RunEncrypt(cipher, &encrypted, "sk-live-123", "alice", true))
		blob := strings.TrimSpace(encrypted.String())

		var decrypted bytes.Buffer
		err := RunDecrypt(cipher, &decrypted, blob, "bob", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrContextMismatch)
		assert.Empty(t, decrypted.String())
	})

	t.Run("malformed-blob", func(t *testing.T) {
		var decrypted bytes.Buffer
		err := RunDecrypt(cipher, &decrypted, "not-a-blob", "", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decrypt")
		assert.Empty(t, decrypted.String())
	})
}

func TestRunEncrypt_InvalidUTF8(t *testing.T) {
	cipher := newTestCipher(t)

	var out bytes.Buffer
	err := RunEncrypt(cipher, &out, string([]byte{'k', 0xff}), "", false)

	assert.ErrorIs(t, err, cryptoDomain.ErrMalformedBlob)
	assert.Empty(t, out.String())
}
