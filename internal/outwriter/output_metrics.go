package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/internal/parquet"
	"github.com/huangsam/citescope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMetricReports outputs per-dataset metric reports, dispatching based on
// the output format configured.
func WriteMetricReports(reports []schema.MetricReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONMetricReports(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetricReports(w, reports, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetMetricReports(reports, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricReportTable(w, reports, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeMetricReportTable generates and writes the human-readable table.
func writeMetricReportTable(w io.Writer, reports []schema.MetricReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Dataset", "Citations", "Authors", "Entropy", "Gini", "Dominance", "HHI", "Evenness", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range reports {
		label := contract.GetPlainLabel(r.Evenness)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Evenness)
		}
		data = append(data, []string{
			r.Label,
			fmt.Sprintf(intFmt, r.TotalCitations),
			fmt.Sprintf(intFmt, r.UniqueAuthors),
			fmtFloat(r.Entropy),
			fmtFloat(r.Gini),
			fmtFloat(r.Dominance),
			fmtFloat(r.HHI),
			fmtFloat(r.Evenness),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCitations := 0
	for _, r := range reports {
		totalCitations += r.TotalCitations
	}
	if _, err := fmt.Fprintf(w, "Analyzed %d datasets (total citations: %d)\n", len(reports), totalCitations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVMetricReports writes the metric reports in CSV format.
func writeCSVMetricReports(w io.Writer, reports []schema.MetricReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"dataset",
		"total_citations",
		"unique_authors",
		"entropy",
		"gini",
		"dominance",
		"hhi",
		"evenness",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			rec := []string{
				r.Label,
				fmt.Sprintf(intFmt, r.TotalCitations),
				fmt.Sprintf(intFmt, r.UniqueAuthors),
				fmtFloat(r.Entropy),
				fmtFloat(r.Gini),
				fmtFloat(r.Dominance),
				fmtFloat(r.HHI),
				fmtFloat(r.Evenness),
				contract.GetPlainLabel(r.Evenness),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONMetricReports writes the metric reports in JSON format.
func writeJSONMetricReports(w io.Writer, reports []schema.MetricReport) error {
	// Prepare the data structure for JSON with rank and label added
	type JSONMetricReport struct {
		Rank  int    `json:"rank"`
		Label string `json:"diversity_label"`
		schema.MetricReport
	}

	output := make([]JSONMetricReport, len(reports))
	for i, r := range reports {
		output[i] = JSONMetricReport{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(r.Evenness),
			MetricReport: r,
		}
	}

	return writeJSON(w, output)
}

// writeParquetMetricReports writes the metric reports as a Parquet file.
// Parquet is a binary columnar format, so a target file is mandatory.
func writeParquetMetricReports(reports []schema.MetricReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertMetricReports(reports)
	if err := parquet.WriteMetricReportsParquet(rows, cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to write parquet output: %w", err)
	}
	fmt.Printf("Exported %d metric reports to: %s\n", len(rows), cfg.OutputFile)
	return nil
}
