package cmd

import (
	"fmt"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/internal/iocache"
	"github.com/huangsam/citescope/internal/outwriter"
	"github.com/huangsam/citescope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export and list commands)
	outputMode := schema.OutputMode(viper.GetString("output"))
	if _, ok := schema.ValidOutputModes[outputMode]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", outputMode)
	}
	useColors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}

	// Initialize the store with the loaded config
	store, err := iocache.NewHistoryStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize report history: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.Output = outputMode
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")
	cfg.UseColors = useColors

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iocache.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on report history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by analysis commands. This avoids dataset path
// validation and complex config processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded metric reports",
	Long: `Manage the metric reports recorded by 'metrics --record'.

When recording is enabled, citescope stores every metrics run:
- Run metadata (timestamp, number of reports)
- One metric report per dataset (entropy, gini, dominance, HHI, evenness)

This enables trend tracking over time and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show report history statistics
  list    - Print all recorded metric reports
  export  - Export reports to Parquet for analytics
  clear   - Remove all recorded reports
  migrate - Run database schema migrations

Examples:
  # Check history status
  citescope history status

  # Export for analysis in pandas/DuckDB
  citescope history export --output-file reports.parquet`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display report history statistics and connection details",
	Long: `Show detailed information about recorded metric reports.

Displays:
- Backend type and storage location
- Total number of recorded runs and reports
- Oldest and newest run timestamps

Examples:
  # Check history status
  citescope history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(status)
	},
}

// historyListCmd prints all recorded reports.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all recorded metric reports, newest run first",
	Long: `List every metric report recorded by 'metrics --record'.

Reports are ordered newest run first, then by dataset label. The output
honors the usual --output and --output-file flags, so the history can go
straight to CSV or JSON.

Examples:
  # Review recent runs
  citescope history list

  # Dump to CSV
  citescope history list --output csv --output-file history.csv`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		reports, err := historyStore.ListReports()
		if err != nil {
			contract.LogFatal("Failed to list report history", err)
		}
		if err := outwriter.WriteMetricReports(reports, cfg, 0); err != nil {
			contract.LogFatal("Failed to write report history", err)
		}
	},
}

// historyClearCmd clears the report history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded metric reports",
	Long: `Delete all stored runs and metric reports.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  citescope history export --output-file backup.parquet
  citescope history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear report history", err)
		}
		fmt.Println("Report history cleared successfully.")
	},
}

// historyExportCmd exports report history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded reports to Parquet for BI tools and analytics",
	Long: `Export all recorded metric reports to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all reports
  citescope history export --output-file reports.parquet

  # Use with DuckDB
  duckdb -c "SELECT * FROM read_parquet('reports.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(historyStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export report history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the report history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  citescope history migrate

  # Migrate to specific version
  citescope history migrate --target-version 1

  # Rollback to initial state
  citescope history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
