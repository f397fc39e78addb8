package postgres

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/internal/config"
)

// RunMigrations brings the portfolio schema up to date. It is a no-op when
// migrations are disabled.
func RunMigrations(db config.DatabaseConfig, mig config.MigrationsConfig, logger *zap.Logger) error {
	if !mig.Enabled {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sqlDB, err := sql.Open("postgres", db.URL)
	if err != nil {
		return errors.Wrap(err, "open migration connection")
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return errors.Wrap(err, "ping migration connection")
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "migration driver")
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(mig.Path))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, db.Name, driver)
	if err != nil {
		return errors.Wrapf(err, "load migrations from %s", mig.Path)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "read migration version")
	}
	logger.Info("database migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
