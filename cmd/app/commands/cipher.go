package commands

import (
	"fmt"
	"io"
)

// StringCipher is the subset of the string cipher used by the encrypt and decrypt commands.
type StringCipher interface {
	Encrypt(plaintext string) (string, error)
	EncryptWithContext(plaintext, context string) (string, error)
	Decrypt(blob string) (string, error)
	DecryptWithContext(blob, expectedContext string) (string, error)
}

// RunEncrypt encrypts plaintext and writes the blob to writer. When withContext is set the
// plaintext is bound to context, which may be empty.
func RunEncrypt(
	cipher StringCipher,
	writer io.Writer,
	plaintext string,
	context string,
	withContext bool,
) error {
	var (
		blob string
		err  error
	)
	if withContext {
		blob, err = cipher.EncryptWithContext(plaintext, context)
	} else {
		blob, err = cipher.Encrypt(plaintext)
	}
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	_, _ = fmt.Fprintln(writer, blob)
	return nil
}

// RunDecrypt decrypts blob and writes the plaintext to writer. When withContext is set the
// blob must have been bound to exactly context.
func RunDecrypt(
	cipher StringCipher,
	writer io.Writer,
	blob string,
	context string,
	withContext bool,
) error {
	var (
		plaintext string
		err       error
	)
	if withContext {
		plaintext, err = cipher.DecryptWithContext(blob, context)
	} else {
		plaintext, err = cipher.Decrypt(blob)
	}
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	_, _ = fmt.Fprintln(writer, plaintext)
	return nil
}
