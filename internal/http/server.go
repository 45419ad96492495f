// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/corpassist/secrets/internal/auth/http"
	authService "github.com/corpassist/secrets/internal/auth/service"
	"github.com/corpassist/secrets/internal/config"
	"github.com/corpassist/secrets/internal/metrics"
	secretsHTTP "github.com/corpassist/secrets/internal/secrets/http"
)

// readinessTimeout bounds the database ping behind /ready.
const readinessTimeout = 2 * time.Second

// Server is the secrets API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

// SetupRouter builds the Gin router with all routes and middleware.
//
// The /v1/secrets group requires a bearer token; per-user rate limiting applies after
// authentication when enabled. ctx bounds background work started by middleware.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	secretHandler *secretsHTTP.SecretHandler,
	tokenService authService.TokenService,
	metricsProvider *metrics.Provider,
) error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		metricsMiddleware, err := metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace)
		if err != nil {
			return err
		}
		router.Use(metricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	secrets := v1.Group("/secrets")
	secrets.Use(authHTTP.AuthenticationMiddleware(tokenService, s.logger))
	if cfg.RateLimitEnabled {
		secrets.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		secrets.POST("", secretHandler.StoreHandler)
		secrets.GET("", secretHandler.ListHandler)
		secrets.GET("/:id", secretHandler.RevealHandler)
		secrets.DELETE("/:id", secretHandler.RemoveHandler)
	}

	s.router = router
	return nil
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves the API until Shutdown is called. It fails when SetupRouter has not run.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter first")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := serve(ctx, s.server, s.router); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
