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

// historyBackendConfig reads and validates the history backend settings.
func historyBackendConfig() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	backend := schema.NoneBackend
	if backendStr != "" {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads minimal configuration needed for history operations.
func historySetup() error {
	backend, connStr, err := historyBackendConfig()
	if err != nil {
		return err
	}

	// No result caching for history commands
	if err := iocache.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads configuration for migrations. It does NOT
// initialize stores or create tables, so migrations can run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := historyBackendConfig()
	if err != nil {
		return err
	}
	if backend == schema.SQLiteBackend {
		connStr = sqlitePathOr(connStr, contract.GetHistoryDBFilePath())
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyCmd focused on ranking history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the ranking history and exports",
	Long: `Manage the audit log of completed rankings.

When enabled with --history-backend, every ranking run is recorded with:
- Run metadata (timestamp, configuration, duration, problem fingerprint)
- The rank, closeness, distances and acceptance label of every alternative

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  fuzzyrank history status --history-backend sqlite
  fuzzyrank history export --history-backend sqlite --output-file rankings`,
}

// historyClearCmd clears the ranking history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded ranking runs",
	Long: `Delete all recorded ranking runs and their entries.

WARNING: This action cannot be undone. Consider exporting data first.`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		iocache.CloseStores()
		dbFile := sqlitePathOr(cfg.HistoryDBConnect, contract.GetHistoryDBFilePath())
		if err := iocache.ClearHistory(cfg.HistoryBackend, dbFile, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear ranking history", err)
		}
		fmt.Println("Ranking history cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display ranking history statistics and connection details",
	Long: `Show the backend, connection state, number of recorded runs, the newest
and oldest run timestamps, the number of ranked entries and table sizes.`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", fmt.Errorf("history tracking is disabled. Set --history-backend to enable it"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports the ranking history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranking history to Parquet",
	Long: `Export every recorded run and ranked entry to Parquet for use with
analytics tools such as DuckDB or pandas.

Requires: --output-file parameter

Examples:
  # Writes rankings.ranking_runs.parquet and rankings.ranking_entries.parquet
  fuzzyrank history export --history-backend sqlite --output-file rankings
  duckdb -c "SELECT * FROM read_parquet('rankings.ranking_entries.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExportHistory(iocache.Manager.GetHistoryStore(), cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export ranking history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the ranking history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  fuzzyrank history migrate --history-backend sqlite
  fuzzyrank history migrate --history-backend sqlite --target-version 1
  fuzzyrank history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
