package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authService "github.com/corpassist/secrets/internal/auth/service"
	customValidation "github.com/corpassist/secrets/internal/validation"
)

// issuedTokenOutput is the JSON shape printed by RunIssueToken.
type issuedTokenOutput struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RunIssueToken signs a bearer token for userID and writes it to writer in text or JSON
// format. An empty userID issues a token for a freshly generated UUIDv7.
func RunIssueToken(
	tokenService authService.TokenService,
	logger *slog.Logger,
	writer io.Writer,
	userID string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	var (
		subject uuid.UUID
		err     error
	)
	if userID == "" {
		subject, err = uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate user id: %w", err)
		}
	} else {
		if err := validation.Validate(userID, customValidation.UUID); err != nil {
			return fmt.Errorf("invalid user id %q: %w", userID, err)
		}
		subject = uuid.MustParse(userID)
	}

	token, err := tokenService.Issue(subject)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("user_id", subject.String()),
		slog.Time("expires_at", token.ExpiresAt),
	)

	if format == "json" {
		return writeJSON(writer, issuedTokenOutput{
			UserID:    subject.String(),
			Token:     token.Value,
			ExpiresAt: token.ExpiresAt,
		})
	}

	_, _ = fmt.Fprintf(writer, "User ID:    %s\n", subject)
	_, _ = fmt.Fprintf(writer, "Expires At: %s\n", token.ExpiresAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(writer, "Token:      %s\n", token.Value)
	return nil
}
