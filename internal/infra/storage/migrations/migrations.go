package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Runner применяет встроенные SQL миграции
type Runner struct {
	db     *sql.DB
	logger Logger
}

// NewRunner создает новый экземпляр Runner
func NewRunner(db *sql.DB, logger Logger) *Runner {
	return &Runner{
		db:     db,
		logger: logger,
	}
}

// Up применяет все непримененные миграции
func (r *Runner) Up() error {
	m, err := r.newMigrator()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: Up - apply: %v", ErrMigrate, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: Up - read version: %v", ErrMigrate, err)
	}

	r.logger.Info("Migrations: schema migrated to version %d (dirty=%t)", version, dirty)
	return nil
}

// newMigrator не закрывает migrate.Migrate: Close закрыл бы общий *sql.DB
func (r *Runner) newMigrator() (*migrate.Migrate, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: open embedded source: %v", ErrMigrate, err)
	}

	driver, err := postgres.WithInstance(r.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: create postgres driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: create migrator: %v", ErrMigrate, err)
	}

	return m, nil
}
