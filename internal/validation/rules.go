// Package validation holds the jellydator/validation rules shared by request DTOs, use
// cases and CLI commands.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/corpassist/secrets/internal/errors"
)

// secretNameRegex allows letters, digits and the separators commonly found in credential
// names ("github-ci", "stripe_live", "aws.prod/deploy").
var secretNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-/]*$`)

// WrapValidationError turns a validation failure into an ErrInvalidInput so handlers map
// it to 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

func stringRule(valid func(string) bool, code, message string) validation.StringRule {
	return validation.NewStringRuleWithError(valid, validation.NewError(code, message))
}

var (
	// SecretName accepts names starting with a letter or digit followed by letters, digits
	// or '.', '_', '-', '/'.
	SecretName = stringRule(
		secretNameRegex.MatchString,
		"validation_secret_name",
		"must start with a letter or digit and contain only letters, digits, '.', '_', '-' or '/'",
	)

	// UTF8 rejects byte sequences that are not valid UTF-8.
	UTF8 = stringRule(utf8.ValidString, "validation_utf8", "must be valid UTF-8")

	// UUID accepts any form uuid.Parse understands.
	UUID = stringRule(
		func(s string) bool { return uuid.Validate(s) == nil },
		"validation_uuid",
		"must be a valid UUID",
	)

	// NotBlank rejects strings made only of whitespace.
	NotBlank = stringRule(
		func(s string) bool { return strings.TrimSpace(s) != "" },
		"validation_not_blank",
		"must not be blank",
	)
)
