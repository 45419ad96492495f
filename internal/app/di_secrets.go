package app

import (
	"fmt"

	"github.com/corpassist/secrets/internal/database"
	secretsHTTP "github.com/corpassist/secrets/internal/secrets/http"
	secretsRepository "github.com/corpassist/secrets/internal/secrets/repository"
	secretsUseCase "github.com/corpassist/secrets/internal/secrets/usecase"
)

// SecretRepository returns the secret repository for the configured driver.
func (c *Container) SecretRepository() (secretsUseCase.SecretRepository, error) {
	return c.secretRepository.get(func() (secretsUseCase.SecretRepository, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secret repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverPostgres:
			return secretsRepository.NewPostgreSQLSecretRepository(db), nil
		case database.DriverMySQL:
			return secretsRepository.NewMySQLSecretRepository(db), nil
		default:
			return nil, fmt.Errorf("%w: %s", database.ErrUnsupportedDriver, c.config.DBDriver)
		}
	})
}

// SecretUseCase returns the secret use case, instrumented when metrics are enabled.
func (c *Container) SecretUseCase() (secretsUseCase.SecretUseCase, error) {
	return c.secretUseCase.get(c.initSecretUseCase)
}

// SecretHandler returns the HTTP handler for secret management operations.
func (c *Container) SecretHandler() (*secretsHTTP.SecretHandler, error) {
	return c.secretHandler.get(func() (*secretsHTTP.SecretHandler, error) {
		useCase, err := c.SecretUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get secret use case for secret handler: %w", err)
		}
		return secretsHTTP.NewSecretHandler(useCase, c.Logger()), nil
	})
}

func (c *Container) initSecretUseCase() (secretsUseCase.SecretUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for secret use case: %w", err)
	}

	repository, err := c.SecretRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret repository for secret use case: %w", err)
	}

	cipher, err := c.StringCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get string cipher for secret use case: %w", err)
	}

	useCase := secretsUseCase.NewSecretUseCase(txManager, repository, cipher)
	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for secret use case: %w", err)
	}
	return secretsUseCase.NewSecretUseCaseWithMetrics(useCase, businessMetrics), nil
}
