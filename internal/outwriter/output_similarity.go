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

// WriteSimilarityMatrix outputs the pairwise Jaccard matrix, dispatching based
// on the output format configured.
func WriteSimilarityMatrix(matrix schema.SimilarityMatrix, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matrix)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSimilarityMatrix(w, matrix, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for metric reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSimilarityMatrixText(w, matrix, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeSimilarityMatrixText generates and writes the human-readable matrix.
func writeSimilarityMatrixText(w io.Writer, matrix schema.SimilarityMatrix, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Dataset"}
	headers = append(headers, matrix.Labels...)
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rowLabel := range matrix.Labels {
		rec := []string{rowLabel}
		for _, colLabel := range matrix.Labels {
			rec = append(rec, fmtFloat(matrix.At(rowLabel, colLabel)))
		}
		data = append(data, rec)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Compared %d datasets pairwise\n", len(matrix.Labels)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVSimilarityMatrix writes the similarity matrix in CSV format.
func writeCSVSimilarityMatrix(w io.Writer, matrix schema.SimilarityMatrix, fmtFloat func(float64) string) error {
	header := []string{"dataset"}
	header = append(header, matrix.Labels...)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, rowLabel := range matrix.Labels {
			rec := []string{rowLabel}
			for _, colLabel := range matrix.Labels {
				rec = append(rec, fmtFloat(matrix.At(rowLabel, colLabel)))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
