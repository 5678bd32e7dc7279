package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/citescope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultTopN        = 10
	DefaultPrecision   = 4
	DefaultColumn      = "authors"
	DefaultSeparator   = ";"
)

// Config holds the runtime configuration for an analysis.
// This struct remains the "final, validated" config.
type Config struct {
	Paths     []string // Dataset CSV paths, one per dataset
	Column    string   // CSV column holding the author list
	Separator string   // Separator between authors within a cell

	TopN      int                    // Top-N authors per dataset for presence tables
	Agg       schema.AggregationMode // count or rank
	Target    float64                // Lorenz threshold target; 0 disables lookup
	Record    bool                   // Persist metric reports to the history store
	Precision int                    // Decimal precision for numeric columns

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Column           string  `mapstructure:"column"`
	Separator        string  `mapstructure:"separator"`
	Top              int     `mapstructure:"top"`
	Agg              string  `mapstructure:"agg"`
	Target           float64 `mapstructure:"target"`
	Record           bool    `mapstructure:"record"`
	Precision        int     `mapstructure:"precision"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Width            int     `mapstructure:"width"`
	HistoryBackend   string  `mapstructure:"history-backend"`
	HistoryDBConnect string  `mapstructure:"history-db-connect"`
	Color            string  `mapstructure:"color"`

	// Paths come from positional arguments, which Viper does not handle.
	Paths []string `mapstructure:"-"`
}

// ProcessAndValidate turns raw input into a validated Config.
// All validation functions read from 'input' and populate 'cfg'.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs handles the scalar options.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Paths = input.Paths

	cfg.Column = strings.TrimSpace(input.Column)
	if cfg.Column == "" {
		cfg.Column = DefaultColumn
	}

	cfg.Separator = input.Separator
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}

	cfg.TopN = input.Top
	if cfg.TopN < 1 {
		return fmt.Errorf("top must be at least 1, got %d", input.Top)
	}
	if cfg.TopN > MaxResultLimit {
		return fmt.Errorf("top cannot exceed %d, got %d", MaxResultLimit, input.Top)
	}

	cfg.Agg = schema.AggregationMode(strings.ToLower(input.Agg))
	if _, ok := schema.ValidAggregationModes[cfg.Agg]; !ok {
		return fmt.Errorf("invalid aggregation mode '%s'. must be count or rank", input.Agg)
	}

	cfg.Target = input.Target
	if cfg.Target < 0 || cfg.Target > 1 {
		return fmt.Errorf("target must be in [0, 1], got %g", input.Target)
	}

	cfg.Record = input.Record

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 6 {
		cfg.Precision = 6
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %d", input.Width)
	}

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// validateBackendConfig handles the history store options.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
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

// Clone returns a copy of the config for per-request adjustment.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Paths = make([]string, len(c.Paths))
	copy(clone.Paths, c.Paths)
	return &clone
}
