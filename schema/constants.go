package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// AggregationMode represents how top-N author tables are aggregated.
	AggregationMode string

	// DatabaseBackend represents the database backend for report history.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All aggregation modes supported.
const (
	CountAgg AggregationMode = "count" // default
	RankAgg  AggregationMode = "rank"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllAggregationModes returns a list of all supported aggregation modes.
var AllAggregationModes = []AggregationMode{CountAgg, RankAgg}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidAggregationModes lists all valid aggregation modes.
var ValidAggregationModes = map[AggregationMode]struct{}{
	CountAgg: {},
	RankAgg:  {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
