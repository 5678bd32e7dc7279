// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/citescope/schema"
)

// DatasetLoader defines the ingestion boundary for citation datasets.
// This allows the core analysis logic to be tested without real files.
type DatasetLoader interface {
	// Load reads one dataset and flattens the author column into a
	// citation sequence. Implementations must reject datasets that
	// flatten to zero citation events.
	Load(ctx context.Context, path, column, separator string) (schema.Dataset, error)
}

// HistoryStore defines the interface for recording metric reports across runs.
// This allows the history layer to be mocked for testing.
type HistoryStore interface {
	// BeginRun creates a new run record and returns its unique ID.
	BeginRun(startedAt time.Time) (int64, error)

	// RecordReport stores one dataset's metric report under a run.
	RecordReport(runID int64, report schema.MetricReport) error

	// EndRun updates the run record with its final report count.
	EndRun(runID int64, numReports int) error

	// ListReports returns every stored report, newest run first.
	ListReports() ([]schema.MetricReport, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.HistoryStatus, error)

	// Clear removes all recorded runs and reports.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
