package iocache

import (
	"sync"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"
)

// MockHistoryStore is an in-memory HistoryStore for testing.
type MockHistoryStore struct {
	mu      sync.Mutex
	runs    []schema.RunRecord
	reports map[int64][]schema.MetricReport
	nextID  int64
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// NewMockHistoryStore creates an empty in-memory history store.
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{
		reports: make(map[int64][]schema.MetricReport),
		nextID:  1,
	}
}

// BeginRun creates a new run record and returns its unique ID.
func (m *MockHistoryStore) BeginRun(startedAt time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	runID := m.nextID
	m.nextID++
	m.runs = append(m.runs, schema.RunRecord{RunID: runID, StartedAt: startedAt})
	return runID, nil
}

// RecordReport stores one dataset's metric report under a run.
func (m *MockHistoryStore) RecordReport(runID int64, report schema.MetricReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[runID] = append(m.reports[runID], report)
	return nil
}

// EndRun updates the run record with its final report count.
func (m *MockHistoryStore) EndRun(runID int64, numReports int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.runs {
		if m.runs[i].RunID == runID {
			m.runs[i].NumReports = numReports
		}
	}
	return nil
}

// ListReports returns every stored report, newest run first.
func (m *MockHistoryStore) ListReports() ([]schema.MetricReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []schema.MetricReport
	for i := len(m.runs) - 1; i >= 0; i-- {
		all = append(all, m.reports[m.runs[i].RunID]...)
	}
	return all, nil
}

// GetStatus returns status information about the store.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := schema.HistoryStatus{
		Backend:  schema.NoneBackend,
		Location: "memory",
		RunCount: len(m.runs),
	}
	for _, reports := range m.reports {
		status.ReportCount += len(reports)
	}
	if len(m.runs) > 0 {
		status.OldestRun = m.runs[0].StartedAt
		status.NewestRun = m.runs[len(m.runs)-1].StartedAt
	}
	return status, nil
}

// Clear removes all recorded runs and reports.
func (m *MockHistoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = nil
	m.reports = make(map[int64][]schema.MetricReport)
	m.nextID = 1
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MockHistoryStore) Close() error {
	return nil
}
