package schema

import "time"

// HistoryStatus has status information about the report history store.
type HistoryStatus struct {
	Backend     DatabaseBackend `json:"backend"`
	Location    string          `json:"location"` // File path (sqlite) or DSN host (mysql/postgresql)
	RunCount    int             `json:"run_count"`
	ReportCount int             `json:"report_count"`
	OldestRun   time.Time       `json:"oldest_run"`
	NewestRun   time.Time       `json:"newest_run"`
}

// RunRecord is one recorded invocation of the metrics analysis.
type RunRecord struct {
	RunID      int64     `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	NumReports int       `json:"num_reports"`
}
