package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending migrations for dbDriver ("postgres" or "mysql") to the
// database at connectionString. Returns nil when the schema is already up to date.
func RunMigrations(logger *slog.Logger, dbDriver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver))

	var migrationsPath string
	switch dbDriver {
	case "postgres":
		migrationsPath = "file://migrations/postgresql"
	case "mysql":
		migrationsPath = "file://migrations/mysql"
		connectionString = "mysql://" + connectionString
	default:
		return fmt.Errorf("failed to create migrate instance: unsupported driver %q", dbDriver)
	}

	m, err := migrate.New(migrationsPath, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
