package iocache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockHistoryStore(t *testing.T) {
	store := NewMockHistoryStore()

	first, err := store.BeginRun(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.RecordReport(first, sampleReport("old")))
	require.NoError(t, store.EndRun(first, 1))

	second, err := store.BeginRun(time.Now())
	require.NoError(t, err)
	require.NoError(t, store.RecordReport(second, sampleReport("new")))
	require.NoError(t, store.EndRun(second, 1))

	reports, err := store.ListReports()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "new", reports[0].Label)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.RunCount)
	assert.Equal(t, 2, status.ReportCount)

	require.NoError(t, store.Clear())
	reports, err = store.ListReports()
	require.NoError(t, err)
	assert.Empty(t, reports)
}
