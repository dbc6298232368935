package contract

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fuzzyrank/fuzzyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		ProblemPathStr: "problem.yaml",
		Output:         "text",
		Precision:      DefaultPrecision,
		Color:          "yes",
		CacheBackend:   string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet needs file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }},
		{name: "precision too low", mutate: func(in *ConfigRawInput) { in.Precision = 0 }, expectError: true},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 }, expectError: true},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{name: "invalid cache backend", mutate: func(in *ConfigRawInput) { in.CacheBackend = "redis" }, expectError: true},
		{name: "invalid history backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "redis" }, expectError: true},
		{name: "mysql without connection", mutate: func(in *ConfigRawInput) { in.CacheBackend = "mysql" }, expectError: true},
		{name: "negative template", mutate: func(in *ConfigRawInput) { in.Experts = -2 }, expectError: true},
		{name: "bad log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "loud" }, expectError: true},
		{
			name: "same sqlite file",
			mutate: func(in *ConfigRawInput) {
				in.HistoryBackend = "sqlite"
				in.CacheDBConnect = "same.db"
				in.HistoryDBConnect = "same.db"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, "problem.yaml", cfg.ProblemPath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.DefaultLimits, cfg.Limits)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.DatabaseBackend(""), cfg.HistoryBackend)
}

func withLimits(base schema.Limits, edit func(*schema.Limits)) schema.Limits {
	edit(&base)
	return base
}

func TestProcessLimits(t *testing.T) {
	fromFile := 2
	negative := -1

	tests := []struct {
		name     string
		input    ConfigRawInput
		expected schema.Limits
		wantErr  bool
	}{
		{name: "defaults", expected: schema.DefaultLimits},
		{name: "classic preset", input: ConfigRawInput{Classic: true}, expected: schema.ClassicLimits},
		{
			name:     "config file overrides preset",
			input:    ConfigRawInput{Classic: true, Limits: LimitsRawInput{MinExperts: &fromFile}},
			expected: withLimits(schema.ClassicLimits, func(l *schema.Limits) { l.MinExperts = 2 }),
		},
		{
			name:     "flags override config file",
			input:    ConfigRawInput{MinCriteria: 7, Limits: LimitsRawInput{MinCriteria: &fromFile}},
			expected: withLimits(schema.DefaultLimits, func(l *schema.Limits) { l.MinCriteria = 7 }),
		},
		{
			name:    "zero from config file",
			input:   ConfigRawInput{Limits: LimitsRawInput{MinAlternatives: new(int)}},
			wantErr: true,
		},
		{
			name:     "maximums from config file and flags",
			input:    ConfigRawInput{MaxAlternatives: 1000, Limits: LimitsRawInput{MaxExperts: &fromFile, MaxCriteria: new(int)}},
			expected: withLimits(schema.DefaultLimits, func(l *schema.Limits) { l.MaxExperts, l.MaxCriteria, l.MaxAlternatives = 2, 0, 1000 }),
		},
		{
			name:    "maximum below minimum",
			input:   ConfigRawInput{Classic: true, MaxCriteria: 3},
			wantErr: true,
		},
		{
			name:    "negative maximum",
			input:   ConfigRawInput{Limits: LimitsRawInput{MaxExperts: &negative}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := processLimits(cfg, &tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Limits)
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/fuzzyrank"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost dbname=fuzzyrank"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "dbname=fuzzyrank"))
}

func TestSeparateSQLiteFiles(t *testing.T) {
	dir := t.TempDir()
	input := validRawInput()
	input.HistoryBackend = "sqlite"
	input.CacheDBConnect = filepath.Join(dir, "cache.db")
	input.HistoryDBConnect = filepath.Join(dir, "history.db")

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.SQLiteBackend, cfg.HistoryBackend)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Precision: 2, Limits: schema.ClassicLimits}
	clone := cfg.Clone()
	clone.Precision = 4
	clone.Limits.MinExperts = 9
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 3, cfg.Limits.MinExperts)
}
