package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMaxAge is how long browsers may cache a preflight response.
const corsMaxAge = 12 * time.Hour

// createCORSMiddleware returns the CORS middleware for CORS_ALLOW_ORIGINS, or nil when CORS
// is disabled or no usable origin is configured.
//
// The secrets API is meant for server-to-server use, so CORS is off by default. Origins
// must be absolute http(s) URLs; anything else is skipped with a warning. A lone "*" allows
// every origin but then credentials are never allowed, since browsers would otherwise send
// cookies for arbitrary sites.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, rejected := parseOrigins(allowOriginsStr)
	for _, origin := range rejected {
		logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured; CORS will not be applied")
		return nil
	}

	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        corsMaxAge,
	}

	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
		logger.Warn("CORS allows every origin; credentials are disabled")
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
		logger.Info("CORS enabled", slog.Any("origins", origins))
	}

	return cors.New(config)
}

// parseOrigins splits a comma-separated origin list. Valid entries are "*" on its own or
// absolute http(s) origins; everything else is returned in rejected.
func parseOrigins(originsStr string) (origins, rejected []string) {
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		switch {
		case origin == "":
			continue
		case origin == "*",
			strings.HasPrefix(origin, "https://"),
			strings.HasPrefix(origin, "http://"):
			origins = append(origins, origin)
		default:
			rejected = append(rejected, origin)
		}
	}

	// "*" mixed with explicit origins is ambiguous; keep the explicit ones.
	if len(origins) > 1 {
		explicit := origins[:0]
		for _, origin := range origins {
			if origin == "*" {
				rejected = append(rejected, origin)
				continue
			}
			explicit = append(explicit, origin)
		}
		origins = explicit
	}

	return origins, rejected
}
