package iocache

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fuzzyrank/fuzzyrank/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName validates that the table name is a safe SQL identifier.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern %s)", name, tableNamePattern)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// placeholders returns n comma separated parameter placeholders for the backend.
func placeholders(backend schema.DatabaseBackend, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// driverName returns the database/sql driver registered for the backend.
func driverName(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "mysql"
	case schema.PostgreSQLBackend:
		return "pgx"
	default:
		return "sqlite"
	}
}

// openDB opens and pings a database for the backend. An empty SQLite
// connection string falls back to defaultPath.
func openDB(backend schema.DatabaseBackend, connStr, defaultPath string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			connStr = defaultPath
		}
	case schema.MySQLBackend, schema.PostgreSQLBackend:
	default:
		return nil, fmt.Errorf("unsupported backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	db, err := sql.Open(driverName(backend), connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t
	}
}

// parseTime parses a SQLite time column written by formatTime.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
