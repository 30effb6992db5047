package database

import (
	"errors"
	"fmt"
	"net/url"

	"emr-service/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// RunMigrations applies all pending schema migrations from the configured
// directory. A database that is already up to date is not an error.
func RunMigrations(dbCfg config.DBConfig, migCfg config.MigrationsConfig) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(dbCfg.User), url.QueryEscape(dbCfg.Password),
		dbCfg.Host, dbCfg.Port, dbCfg.Name,
	)

	m, err := migrate.New("file://"+migCfg.Path, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logrus.Info("Database migrations applied")
	return nil
}
