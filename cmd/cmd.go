// Package cmd defines the command-line interface for fuzzyrank.
package cmd

import (
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject problems with unknown labels, mismatched shapes or too few entries")
	rootCmd.PersistentFlags().Bool("classic", false, "Require at least 3 experts, 5 criteria and 4 alternatives")
	rootCmd.PersistentFlags().Int("min-experts", 0, "Minimum number of experts (0 = use config or default)")
	rootCmd.PersistentFlags().Int("min-criteria", 0, "Minimum number of criteria (0 = use config or default)")
	rootCmd.PersistentFlags().Int("min-alternatives", 0, "Minimum number of alternatives (0 = use config or default)")
	rootCmd.PersistentFlags().Int("max-experts", 0, "Maximum number of experts (0 = use config or default)")
	rootCmd.PersistentFlags().Int("max-criteria", 0, "Maximum number of criteria (0 = use config or default)")
	rootCmd.PersistentFlags().Int("max-alternatives", 0, "Maximum number of alternatives (0 = use config or default)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Ranking history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for ranking history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().Bool("detail", false, "Print distances to the ideal solutions")
	rankCmd.Flags().Bool("steps", false, "Print every intermediate matrix of the computation")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of templateCmd to Viper
	templateCmd.Flags().Int("experts", 0, "Number of experts (0 = keep source size or 3)")
	templateCmd.Flags().Int("criteria", 0, "Number of criteria (0 = keep source size or 3)")
	templateCmd.Flags().Int("alternatives", 0, "Number of alternatives (0 = keep source size or 3)")
	templateCmd.Flags().String("from", "", "Existing problem file to resize instead of starting empty")
	if err := viper.BindPFlags(templateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding template flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the HTTP API to listen on")
	serveCmd.Flags().String("nats-url", "", "NATS server URL for ranking events (empty = disabled)")
	serveCmd.Flags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
