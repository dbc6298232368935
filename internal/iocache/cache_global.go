package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// resultTable is the name of the table for result caching.
const resultTable = "fuzzyrank_result_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for result cache storage.
func GetDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	return contract.GetHistoryDBFilePath()
}

// InitStores initializes the global manager with separate cache and history stores.
// An empty backend leaves the corresponding store disabled.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, historyBackend schema.DatabaseBackend, historyConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var resultStore contract.CacheStore
		if cacheBackend != "" {
			store, err := NewCacheStore(resultTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize result caching: %w", err)
				return
			}
			resultStore = store
		}

		var historyStore contract.HistoryStore
		if historyBackend != "" {
			store, err := NewHistoryStore(historyBackend, historyConnStr)
			if err != nil {
				if resultStore != nil {
					_ = resultStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize history store: %w", err)
				return
			}
			historyStore = store
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.results = resultStore
		Manager.history = historyStore
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.results != nil {
			_ = Manager.results.Close()
		}
		if Manager.history != nil {
			_ = Manager.history.Close()
		}
	})
}

// ClearCache clears the result cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearTables(backend, dbFilePath, connStr, resultTable)
}

// ClearHistory clears the ranking history for the specified backend.
func ClearHistory(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	// Entries first, they belong to runs
	return clearTables(backend, dbFilePath, connStr, rankingEntriesTable, rankingRunsTable, "schema_migrations")
}

func clearTables(backend schema.DatabaseBackend, dbFilePath, connStr string, tables ...string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		for _, table := range tables {
			if err := clearSQLTable(backend, connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend, "":
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(backend schema.DatabaseBackend, connStr, tableName string) error {
	if err := validateTableName(tableName); err != nil {
		return err
	}

	db, err := sql.Open(driverName(backend), connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", backend, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
