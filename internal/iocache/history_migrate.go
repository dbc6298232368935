package iocache

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrateHistory runs database migrations for the history store and reports
// progress to w.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations (to initial state).
// - If targetVersion > 0, it migrates to the specified version.
func MigrateHistory(backend schema.DatabaseBackend, connStr string, targetVersion int, w io.Writer) error {
	if backend == schema.NoneBackend || backend == "" {
		return fmt.Errorf("migrations are not supported for backend %q", backend)
	}

	db, err := openDB(backend, connStr, GetHistoryDBFilePath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := newMigrator(db, backend)
	if err != nil {
		return err
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintln(w, "No migration needed. Database is already at the latest version.")
		} else {
			newVersion, _, _ := m.Version()
			_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", currentVersion, newVersion)
		}
	case targetVersion == 0:
		err = m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintln(w, "No migration needed. Database is already at version 0")
		} else {
			_, _ = fmt.Fprintf(w, "Successfully rolled back from version %d to version 0\n", currentVersion)
		}
	default:
		err = m.Migrate(uint(targetVersion))
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			_, _ = fmt.Fprintf(w, "No migration needed. Database is already at version %d\n", targetVersion)
		} else {
			_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", currentVersion, targetVersion)
		}
	}

	return nil
}

// newMigrator builds a migrate instance over db using the embedded
// migrations of the backend.
func newMigrator(db *sql.DB, backend schema.DatabaseBackend) (*migrate.Migrate, error) {
	var driver database.Driver
	var err error
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations/"+string(backend))
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations directory: %w", err)
	}

	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "fuzzyrank", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
