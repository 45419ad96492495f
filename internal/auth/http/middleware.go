package http

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/corpassist/secrets/internal/auth/service"
	apperrors "github.com/corpassist/secrets/internal/errors"
	"github.com/corpassist/secrets/internal/httputil"
)

const bearerScheme = "bearer"

var (
	errMissingAuthorization   = errors.New("missing authorization header")
	errMalformedAuthorization = errors.New("authorization header is not a bearer token")
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthorization
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", errMalformedAuthorization
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMalformedAuthorization
	}
	return token, nil
}

// AuthenticationMiddleware requires a valid JWT bearer token and stores its subject as the
// requesting user id (see GetUserID). Any header or token failure aborts with 401.
func AuthenticationMiddleware(tokenService authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	reject := func(c *gin.Context, reason error) {
		logger.Debug("authentication failed", slog.String("reason", reason.Error()))
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, reason.Error()), logger)
		c.Abort()
	}

	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			reject(c, err)
			return
		}

		userID, err := tokenService.Verify(token)
		if err != nil {
			reject(c, err)
			return
		}

		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
