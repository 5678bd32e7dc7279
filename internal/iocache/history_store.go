package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver (CGO-free)
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db       *sql.DB
	backend  schema.DatabaseBackend
	location string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var location string

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		location = dbPath
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		location = connStr
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		location = connStr
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	// Create the table schemas
	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{
		db:       db,
		backend:  backend,
		location: location,
	}, nil
}

// createHistoryTables creates the report history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{reportsTable, getCreateReportsQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for citescope_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				started_at DATETIME(6) NOT NULL,
				num_reports INT NOT NULL DEFAULT 0
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				started_at TIMESTAMPTZ NOT NULL,
				num_reports INT NOT NULL DEFAULT 0
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				started_at TEXT NOT NULL,
				num_reports INTEGER NOT NULL DEFAULT 0
			);
		`, quotedTableName)
	}
}

// getCreateReportsQuery returns the CREATE TABLE query for citescope_metric_reports.
func getCreateReportsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(reportsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				label VARCHAR(255) NOT NULL,
				total_citations INT NOT NULL,
				unique_authors INT NOT NULL,
				entropy DOUBLE NOT NULL,
				gini DOUBLE NOT NULL,
				dominance DOUBLE NOT NULL,
				hhi DOUBLE NOT NULL,
				evenness DOUBLE NOT NULL,
				PRIMARY KEY (run_id, label)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				label TEXT NOT NULL,
				total_citations INT NOT NULL,
				unique_authors INT NOT NULL,
				entropy DOUBLE PRECISION NOT NULL,
				gini DOUBLE PRECISION NOT NULL,
				dominance DOUBLE PRECISION NOT NULL,
				hhi DOUBLE PRECISION NOT NULL,
				evenness DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, label)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				label TEXT NOT NULL,
				total_citations INTEGER NOT NULL,
				unique_authors INTEGER NOT NULL,
				entropy REAL NOT NULL,
				gini REAL NOT NULL,
				dominance REAL NOT NULL,
				hhi REAL NOT NULL,
				evenness REAL NOT NULL,
				PRIMARY KEY (run_id, label)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new run record and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startedAt time.Time) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)

	var runID int64
	var err error
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (started_at) VALUES ($1) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, startedAt).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (started_at) VALUES (?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, formatTime(startedAt, hs.backend))
		if err != nil {
			return 0, fmt.Errorf("failed to insert run: %w", err)
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return runID, nil
}

// RecordReport stores one dataset's metric report under a run.
func (hs *HistoryStoreImpl) RecordReport(runID int64, report schema.MetricReport) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(reportsTable, hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, label, total_citations, unique_authors,
			                entropy, gini, dominance, hhi, evenness)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, label, total_citations, unique_authors,
			                entropy, gini, dominance, hhi, evenness)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	_, err := hs.db.Exec(query,
		runID, report.Label, report.TotalCitations, report.UniqueAuthors,
		report.Entropy, report.Gini, report.Dominance, report.HHI, report.Evenness)
	if err != nil {
		return fmt.Errorf("failed to insert metric report: %w", err)
	}

	return nil
}

// EndRun updates the run record with its final report count.
func (hs *HistoryStoreImpl) EndRun(runID int64, numReports int) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`UPDATE %s SET num_reports = $1 WHERE run_id = $2`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`UPDATE %s SET num_reports = ? WHERE run_id = ?`, quotedTableName)
	}

	if _, err := hs.db.Exec(query, numReports, runID); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	return nil
}

// ListReports returns every stored report, newest run first.
func (hs *HistoryStoreImpl) ListReports() ([]schema.MetricReport, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(reportsTable, hs.backend)
	query := fmt.Sprintf(`
		SELECT label, total_citations, unique_authors, entropy, gini, dominance, hhi, evenness
		FROM %s ORDER BY run_id DESC, label ASC
	`, quotedTableName)

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []schema.MetricReport
	for rows.Next() {
		var r schema.MetricReport
		if err := rows.Scan(&r.Label, &r.TotalCitations, &r.UniqueAuthors,
			&r.Entropy, &r.Gini, &r.Dominance, &r.HHI, &r.Evenness); err != nil {
			return nil, fmt.Errorf("failed to scan metric report: %w", err)
		}
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metric reports: %w", err)
	}

	return reports, nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:  hs.backend,
		Location: hs.location,
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(runsTable, hs.backend))
	if err := hs.db.QueryRow(runsQuery).Scan(&status.RunCount); err != nil {
		return status, fmt.Errorf("failed to get run count: %w", err)
	}

	reportsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(reportsTable, hs.backend))
	if err := hs.db.QueryRow(reportsQuery).Scan(&status.ReportCount); err != nil {
		return status, fmt.Errorf("failed to get report count: %w", err)
	}

	if status.RunCount > 0 {
		oldest, err := hs.scanRunTime("ASC")
		if err != nil {
			return status, err
		}
		status.OldestRun = oldest

		newest, err := hs.scanRunTime("DESC")
		if err != nil {
			return status, err
		}
		status.NewestRun = newest
	}

	return status, nil
}

// scanRunTime reads the first started_at in the given run_id order.
func (hs *HistoryStoreImpl) scanRunTime(order string) (time.Time, error) {
	query := fmt.Sprintf("SELECT started_at FROM %s ORDER BY run_id %s LIMIT 1",
		quoteTableName(runsTable, hs.backend), order)
	row := hs.db.QueryRow(query)

	// SQLite stores timestamps as RFC 3339 text
	if hs.backend == schema.SQLiteBackend {
		var raw string
		if err := row.Scan(&raw); err != nil {
			return time.Time{}, fmt.Errorf("failed to get run time: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse run time: %w", err)
		}
		return parsed, nil
	}

	var t time.Time
	if err := row.Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("failed to get run time: %w", err)
	}
	return t, nil
}

// Clear removes all recorded runs and reports.
func (hs *HistoryStoreImpl) Clear() error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	for _, table := range []string{reportsTable, runsTable} {
		query := fmt.Sprintf("DELETE FROM %s", quoteTableName(table, hs.backend))
		if _, err := hs.db.Exec(query); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
