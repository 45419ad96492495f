package app

import (
	"fmt"

	authService "github.com/corpassist/secrets/internal/auth/service"
)

// TokenService returns the HS256 bearer token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	return c.tokenService.get(func() (authService.TokenService, error) {
		tokenService, err := authService.NewTokenService(
			c.config.AuthJWTSecret,
			c.config.AuthJWTIssuer,
			c.config.AuthTokenExpiration,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create token service: %w", err)
		}
		return tokenService, nil
	})
}
