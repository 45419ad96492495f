// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/corpassist/secrets/internal/auth/service"
	"github.com/corpassist/secrets/internal/config"
	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	cryptoService "github.com/corpassist/secrets/internal/crypto/service"
	"github.com/corpassist/secrets/internal/database"
	"github.com/corpassist/secrets/internal/http"
	"github.com/corpassist/secrets/internal/logging"
	"github.com/corpassist/secrets/internal/metrics"
	secretsHTTP "github.com/corpassist/secrets/internal/secrets/http"
	secretsUseCase "github.com/corpassist/secrets/internal/secrets/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access and shared afterwards.
type Container struct {
	config *config.Config

	// Lifetime of background work started by components (rate limiter cleanup, DB ping).
	ctx    context.Context
	cancel context.CancelFunc

	loggerInit sync.Once
	logger     *slog.Logger

	db        lazy[*sql.DB]
	txManager lazy[database.TxManager]

	kmsService   lazy[cryptoDomain.KMSService]
	masterKey    lazy[*cryptoDomain.MasterKey]
	keyDeriver   lazy[*cryptoService.PBKDF2KeyDeriver]
	stringCipher lazy[*cryptoService.StringCipherService]

	tokenService lazy[authService.TokenService]

	secretRepository lazy[secretsUseCase.SecretRepository]
	secretUseCase    lazy[secretsUseCase.SecretUseCase]
	secretHandler    lazy[*secretsHTTP.SecretHandler]

	metricsProvider lazy[*metrics.Provider]
	businessMetrics lazy[metrics.BusinessMetrics]

	httpServer    lazy[*http.Server]
	metricsServer lazy[*http.MetricsServer]

	shutdownOnce sync.Once
	shutdownErr  error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured with LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = logging.New(os.Stdout, c.config.LogLevel)
	})
	return c.logger
}

// DB returns the database connection pool.
func (c *Container) DB() (*sql.DB, error) {
	return c.db.get(c.initDB)
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	return c.txManager.get(c.initTxManager)
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return c.metricsProvider.get(func() (*metrics.Provider, error) {
		if !c.config.MetricsEnabled {
			return nil, nil
		}
		return metrics.NewProvider(c.config.MetricsNamespace)
	})
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are
// disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return c.businessMetrics.get(c.initBusinessMetrics)
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	return c.httpServer.get(c.initHTTPServer)
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return c.metricsServer.get(c.initMetricsServer)
}

// Shutdown stops background work, then shuts down every component that was built, in
// reverse dependency order. Calling it again returns the first result.
func (c *Container) Shutdown(ctx context.Context) error {
	c.shutdownOnce.Do(func() {
		c.cancel()

		var errs []error

		if server, ok := c.httpServer.peek(); ok && server != nil {
			if err := server.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
			}
		}

		if server, ok := c.metricsServer.peek(); ok && server != nil {
			if err := server.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}

		if provider, ok := c.metricsProvider.peek(); ok && provider != nil {
			if err := provider.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
			}
		}

		if db, ok := c.db.peek(); ok && db != nil {
			if err := db.Close(); err != nil {
				errs = append(errs, fmt.Errorf("database close: %w", err))
			}
		}

		c.shutdownErr = errors.Join(errs...)
	})
	return c.shutdownErr
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(c.ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initHTTPServer wires the secrets API: handler, bearer token verification and optional
// HTTP metrics. The DB is needed by the readiness probe.
func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	secretHandler, err := c.SecretHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret handler for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	if err := server.SetupRouter(c.ctx, c.config, secretHandler, tokenService, metricsProvider); err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}
	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
