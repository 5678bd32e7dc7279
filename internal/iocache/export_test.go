package iocache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteHistoryExport(t *testing.T) {
	store := NewMockHistoryStore()
	runID, err := store.BeginRun(time.Now())
	require.NoError(t, err)
	require.NoError(t, store.RecordReport(runID, sampleReport("virology")))
	require.NoError(t, store.EndRun(runID, 1))

	outputPath := filepath.Join(t.TempDir(), "history.parquet")
	require.NoError(t, ExecuteHistoryExport(store, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExecuteHistoryExportFailures(t *testing.T) {
	t.Run("missing output file", func(t *testing.T) {
		err := ExecuteHistoryExport(NewMockHistoryStore(), "")
		assert.ErrorContains(t, err, "output-file")
	})

	t.Run("empty history", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "history.parquet")
		err := ExecuteHistoryExport(NewMockHistoryStore(), outputPath)
		assert.ErrorContains(t, err, "no report history")
	})
}
