package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []schema.MetricReport {
	return []schema.MetricReport{
		{
			Label:          "virology",
			TotalCitations: 4,
			UniqueAuthors:  3,
			Entropy:        1.0397,
			Gini:           0.1667,
			Dominance:      1.0,
			HHI:            0.375,
			Evenness:       0.9464,
		},
		{
			Label:          "ecology",
			TotalCitations: 10,
			UniqueAuthors:  1,
			Entropy:        0,
			Gini:           0,
			Dominance:      1.0,
			HHI:            1.0,
			Evenness:       1.0,
		},
	}
}

func TestWriteMetricReportTable(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 4,
		UseColors: false,
		Width:     120,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeMetricReportTable(&buf, sampleReports(), cfg, fmtFloat, intFmt, time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "virology")
	assert.Contains(t, output, "ecology")
	assert.Contains(t, output, "0.9464")
	assert.Contains(t, output, contract.DiverseValue)
	assert.Contains(t, output, "Analyzed 2 datasets (total citations: 14)")
}

func TestWriteCSVMetricReports(t *testing.T) {
	fmtFloat, intFmt := createFormatters(4)

	var buf bytes.Buffer
	err := writeCSVMetricReports(&buf, sampleReports(), fmtFloat, intFmt)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "entropy")
	assert.Contains(t, lines[0], "evenness")
	assert.Contains(t, lines[1], "virology")
	assert.Contains(t, lines[1], "1.0397")
	assert.Contains(t, lines[2], "ecology")
}

func TestWriteJSONMetricReports(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONMetricReports(&buf, sampleReports())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "virology", result[0]["label"])
	assert.Equal(t, contract.DiverseValue, result[0]["diversity_label"])
	assert.InDelta(t, 0.375, result[0]["hhi"], 0.0001)
}

func TestWriteMetricReportsParquetDispatch(t *testing.T) {
	t.Run("requires output file", func(t *testing.T) {
		cfg := &contract.Config{Output: schema.ParquetOut, Precision: 4}
		err := WriteMetricReports(sampleReports(), cfg, time.Millisecond)
		assert.ErrorContains(t, err, "output-file")
	})

	t.Run("writes parquet file", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "reports.parquet")
		cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: outputPath, Precision: 4}
		require.NoError(t, WriteMetricReports(sampleReports(), cfg, time.Millisecond))

		info, err := os.Stat(outputPath)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}

func TestWriteMetricReportsToFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "reports.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: outputPath, Precision: 4}
	require.NoError(t, WriteMetricReports(sampleReports(), cfg, time.Millisecond))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "virology")
}
