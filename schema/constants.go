package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching and history.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Default labels used when a cell is missing or cannot be resolved.
const (
	DefaultWeightLabel     = Fair
	DefaultAssessmentLabel = Good
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Default maximum counts. Every matrix holds experts x alternatives x
// criteria cells, so these keep one problem to a few hundred thousand cells.
const (
	DefaultMaxExperts      = 50
	DefaultMaxCriteria     = 50
	DefaultMaxAlternatives = 200
)

// DefaultLimits accepts any non-empty decision problem up to the default maximums.
var DefaultLimits = Limits{
	MinExperts: 1, MinCriteria: 1, MinAlternatives: 1,
	MaxExperts: DefaultMaxExperts, MaxCriteria: DefaultMaxCriteria, MaxAlternatives: DefaultMaxAlternatives,
}

// ClassicLimits is the stricter preset used by panel surveys: three experts,
// five criteria and four alternatives.
var ClassicLimits = Limits{
	MinExperts: 3, MinCriteria: 5, MinAlternatives: 4,
	MaxExperts: DefaultMaxExperts, MaxCriteria: DefaultMaxCriteria, MaxAlternatives: DefaultMaxAlternatives,
}
