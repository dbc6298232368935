package contract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fuzzyrank/fuzzyrank/schema"
)

// Default values for configuration.
const (
	DefaultPrecision     = 3
	MaxPrecision         = 6
	DefaultListenAddr    = ":8080"
	DefaultLogLevel      = "info"
	DefaultTemplateCount = 3
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// LimitsRawInput holds minimum and maximum counts from the YAML config file.
type LimitsRawInput struct {
	MinExperts      *int `mapstructure:"min_experts"`
	MinCriteria     *int `mapstructure:"min_criteria"`
	MinAlternatives *int `mapstructure:"min_alternatives"`
	MaxExperts      *int `mapstructure:"max_experts"`
	MaxCriteria     *int `mapstructure:"max_criteria"`
	MaxAlternatives *int `mapstructure:"max_alternatives"`
}

// Config holds the runtime configuration for a ranking.
// This struct remains the "final, validated" config.
type Config struct {
	ProblemPath string
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	Detail      bool
	Steps       bool
	Strict      bool
	UseColors   bool

	Limits schema.Limits

	TemplateExperts      int
	TemplateCriteria     int
	TemplateAlternatives int
	TemplateFrom         string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	ListenAddr string
	NATSURL    string
	LogLevel   slog.Level
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ProblemPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Strict           bool   `mapstructure:"strict"`
	Classic          bool   `mapstructure:"classic"`
	MinExperts       int    `mapstructure:"min-experts"`
	MinCriteria      int    `mapstructure:"min-criteria"`
	MinAlternatives  int    `mapstructure:"min-alternatives"`
	MaxExperts       int    `mapstructure:"max-experts"`
	MaxCriteria      int    `mapstructure:"max-criteria"`
	MaxAlternatives  int    `mapstructure:"max-alternatives"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from rankCmd.Flags() ---
	Detail bool `mapstructure:"detail"`
	Steps  bool `mapstructure:"steps"`

	// --- Fields from templateCmd.Flags() ---
	Experts      int    `mapstructure:"experts"`
	Criteria     int    `mapstructure:"criteria"`
	Alternatives int    `mapstructure:"alternatives"`
	From         string `mapstructure:"from"`

	// --- Fields from serveCmd.Flags() ---
	Listen   string `mapstructure:"listen"`
	NATSURL  string `mapstructure:"nats-url"`
	LogLevel string `mapstructure:"log-level"`

	// --- Minimum and maximum counts from config file ---
	Limits LimitsRawInput `mapstructure:"limits"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processLimits(cfg, input); err != nil {
		return err
	}
	if err := processTemplate(cfg, input); err != nil {
		return err
	}
	if err := processServer(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		return nil
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// Cache and history must not share a SQLite file
	if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		cacheDBPath := cfg.CacheDBConnect
		if cacheDBPath == "" {
			cacheDBPath = GetCacheDBFilePath()
		}
		historyDBPath := cfg.HistoryDBConnect
		if historyDBPath == "" {
			historyDBPath = GetHistoryDBFilePath()
		}
		if cacheDBPath == historyDBPath {
			return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ProblemPath = strings.TrimSpace(input.ProblemPathStr)
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Steps = input.Steps
	cfg.Strict = input.Strict
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return validateBackendConfigs(cfg, input)
}

// processLimits resolves the minimum and maximum counts. Precedence from
// lowest to highest: defaults, --classic, config file, explicit flags.
// A maximum of 0 in the config file removes that bound.
func processLimits(cfg *Config, input *ConfigRawInput) error {
	limits := schema.DefaultLimits
	if input.Classic {
		limits = schema.ClassicLimits
	}

	fromFile := []struct {
		value *int
		dst   *int
	}{
		{input.Limits.MinExperts, &limits.MinExperts},
		{input.Limits.MinCriteria, &limits.MinCriteria},
		{input.Limits.MinAlternatives, &limits.MinAlternatives},
		{input.Limits.MaxExperts, &limits.MaxExperts},
		{input.Limits.MaxCriteria, &limits.MaxCriteria},
		{input.Limits.MaxAlternatives, &limits.MaxAlternatives},
	}
	for _, f := range fromFile {
		if f.value != nil {
			*f.dst = *f.value
		}
	}

	fromFlags := []struct {
		value int
		dst   *int
	}{
		{input.MinExperts, &limits.MinExperts},
		{input.MinCriteria, &limits.MinCriteria},
		{input.MinAlternatives, &limits.MinAlternatives},
		{input.MaxExperts, &limits.MaxExperts},
		{input.MaxCriteria, &limits.MaxCriteria},
		{input.MaxAlternatives, &limits.MaxAlternatives},
	}
	for _, f := range fromFlags {
		if f.value > 0 {
			*f.dst = f.value
		}
	}

	if limits.MinExperts < 1 || limits.MinCriteria < 1 || limits.MinAlternatives < 1 {
		return fmt.Errorf("minimum counts must be at least 1 (received %d/%d/%d)",
			limits.MinExperts, limits.MinCriteria, limits.MinAlternatives)
	}
	bounds := []struct {
		name     string
		min, max int
	}{
		{"experts", limits.MinExperts, limits.MaxExperts},
		{"criteria", limits.MinCriteria, limits.MaxCriteria},
		{"alternatives", limits.MinAlternatives, limits.MaxAlternatives},
	}
	for _, b := range bounds {
		if b.max < 0 || (b.max > 0 && b.max < b.min) {
			return fmt.Errorf("maximum %s must be 0 or at least the minimum of %d (received %d)", b.name, b.min, b.max)
		}
	}
	cfg.Limits = limits
	return nil
}

// processTemplate handles the template command parameters.
func processTemplate(cfg *Config, input *ConfigRawInput) error {
	cfg.TemplateFrom = strings.TrimSpace(input.From)
	cfg.TemplateExperts = input.Experts
	cfg.TemplateCriteria = input.Criteria
	cfg.TemplateAlternatives = input.Alternatives
	if input.Experts < 0 || input.Criteria < 0 || input.Alternatives < 0 {
		return fmt.Errorf("template counts cannot be negative")
	}
	return nil
}

// processServer handles the serve command parameters.
func processServer(cfg *Config, input *ConfigRawInput) error {
	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	cfg.NATSURL = strings.TrimSpace(input.NATSURL)

	level := input.LogLevel
	if level == "" {
		level = DefaultLogLevel
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
