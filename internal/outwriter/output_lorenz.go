package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLorenzCurve outputs the inequality curve for one dataset, dispatching
// based on the output format configured. A non-negative threshold is the
// smallest author share whose cumulative citation share meets the configured
// target; a negative threshold means no target was requested.
func WriteLorenzCurve(curve schema.LorenzCurve, threshold float64, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONLorenzCurve(w, curve, threshold)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVLorenzCurve(w, curve, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for metric reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLorenzCurveText(w, curve, threshold, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeLorenzCurveText generates and writes the human-readable curve table.
func writeLorenzCurveText(w io.Writer, curve schema.LorenzCurve, threshold float64, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Author Share", "Citation Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range curve.Len() {
		data = append(data, []string{
			fmtFloat(curve.AuthorShare[i]),
			fmtFloat(curve.CitationShare[i]),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Lorenz curve for %s with %d points\n", curve.Label, curve.Len()); err != nil {
		return err
	}
	if threshold >= 0 {
		if _, err := fmt.Fprintf(w, "Top %s of authors account for %s of citations\n", fmtFloat(threshold), fmtFloat(cfg.Target)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVLorenzCurve writes the curve points in CSV format.
func writeCSVLorenzCurve(w io.Writer, curve schema.LorenzCurve, fmtFloat func(float64) string) error {
	header := []string{"author_share", "citation_share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i := range curve.Len() {
			rec := []string{
				fmtFloat(curve.AuthorShare[i]),
				fmtFloat(curve.CitationShare[i]),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONLorenzCurve writes the curve in JSON format, with the threshold
// author share attached when a target lookup ran.
func writeJSONLorenzCurve(w io.Writer, curve schema.LorenzCurve, threshold float64) error {
	type JSONLorenzCurve struct {
		schema.LorenzCurve
		ThresholdAuthorShare *float64 `json:"threshold_author_share,omitempty"`
	}

	output := JSONLorenzCurve{LorenzCurve: curve}
	if threshold >= 0 {
		output.ThresholdAuthorShare = &threshold
	}
	return writeJSON(w, output)
}
