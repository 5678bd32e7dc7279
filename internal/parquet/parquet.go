// Package parquet provides data structures and functions for exporting
// citation metric reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/citescope/schema"
	"github.com/parquet-go/parquet-go"
)

// MetricReportRow represents one dataset's metric report in Parquet form.
// This struct maps to the citescope_metric_reports database table.
type MetricReportRow struct {
	// Label is the dataset label the report was computed for
	Label string `parquet:"label,snappy"`

	// TotalCitations is the number of citation events in the dataset
	TotalCitations int32 `parquet:"total_citations,snappy"`

	// UniqueAuthors is the number of distinct cited authors
	UniqueAuthors int32 `parquet:"unique_authors,snappy"`

	// Entropy is the Shannon entropy of the citation distribution (base e)
	Entropy float64 `parquet:"entropy,snappy"`

	// Gini measures citation concentration (0-1, lower is more even)
	Gini float64 `parquet:"gini,snappy"`

	// Dominance is the citation share held by the five most cited authors
	Dominance float64 `parquet:"dominance,snappy"`

	// HHI is the Herfindahl-Hirschman index of the distribution
	HHI float64 `parquet:"hhi,snappy"`

	// Evenness is the entropy normalized by its maximum for the author count
	Evenness float64 `parquet:"evenness,snappy"`
}

// ConvertMetricReports converts schema.MetricReport to MetricReportRow for Parquet export.
func ConvertMetricReports(reports []schema.MetricReport) []MetricReportRow {
	rows := make([]MetricReportRow, len(reports))
	for i, r := range reports {
		rows[i] = MetricReportRow{
			Label:          r.Label,
			TotalCitations: int32(r.TotalCitations),
			UniqueAuthors:  int32(r.UniqueAuthors),
			Entropy:        r.Entropy,
			Gini:           r.Gini,
			Dominance:      r.Dominance,
			HHI:            r.HHI,
			Evenness:       r.Evenness,
		}
	}
	return rows
}

// WriteMetricReports writes metric report rows to an arbitrary writer.
func WriteMetricReports(w io.Writer, rows []MetricReportRow) error {
	writer := parquet.NewGenericWriter[MetricReportRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet writer: %w", err)
	}
	return writer.Close()
}

// WriteMetricReportsParquet writes a slice of MetricReportRow structs to a Parquet file.
func WriteMetricReportsParquet(rows []MetricReportRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the MetricReportRow struct tags
	return WriteMetricReports(file, rows)
}
