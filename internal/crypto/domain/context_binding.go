package domain

import (
	"crypto/subtle"
	"strings"
)

// BindContext prefixes plaintext with an authorization context. The result is what gets
// sealed, so the context is covered by the AEAD tag instead of travelling beside it.
func BindContext(context, plaintext string) string {
	return context + ContextSeparator + plaintext
}

// UnbindContext checks that message was bound to expected and returns the plaintext.
//
// It fails with ErrMalformedContext when message has no separator at all and with
// ErrContextMismatch when the bound context differs from expected. The comparison is made
// against the full expected prefix rather than the text before the first separator, so
// contexts that themselves contain ":" (such as serialized JSON) still round-trip.
func UnbindContext(message, expected string) (string, error) {
	if !strings.Contains(message, ContextSeparator) {
		return "", ErrMalformedContext
	}

	prefix := expected + ContextSeparator
	if len(message) < len(prefix) ||
		subtle.ConstantTimeCompare([]byte(message[:len(prefix)]), []byte(prefix)) != 1 {
		return "", ErrContextMismatch
	}

	return message[len(prefix):], nil
}
