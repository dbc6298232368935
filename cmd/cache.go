package cmd

import (
	"fmt"
	"os"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/iocache"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// No history tracking for cache commands
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by ranking commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the ranking result cache",
	Long: `Manage the cache of computed rankings.

Fuzzyrank fingerprints every decision problem and stores its full result, so
ranking an unchanged problem again is served from the cache. Entries expire
after seven days.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached results`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached ranking results",
	Long: `Delete all cached ranking results from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  fuzzyrank cache clear

  # Clear MySQL cache (set connection string via env variable)
  FUZZYRANK_CACHE_BACKEND=mysql FUZZYRANK_CACHE_DB_CONNECT="..." fuzzyrank cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// The SQLite file cannot be removed while the store holds it open
		iocache.CloseStores()
		dbFile := sqlitePathOr(cfg.CacheDBConnect, contract.GetCacheDBFilePath())
		if err := iocache.ClearCache(cfg.CacheBackend, dbFile, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show the backend, connection state, number of cached results, the newest
and oldest entry timestamps and the size of the cache table.`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetResultStore()
		if store == nil {
			contract.LogFatal("Failed to get cache status", fmt.Errorf("result caching is disabled"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(os.Stdout, status)
	},
}
