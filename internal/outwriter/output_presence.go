package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePresenceTable outputs the merged top-N author table, dispatching based
// on the output format configured.
func WritePresenceTable(pt schema.PresenceTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, pt)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPresenceTable(w, pt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for metric reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresenceTableText(w, pt, cfg, duration)
		}, "Wrote table")
	}
}

// writePresenceTableText generates and writes the human-readable table.
func writePresenceTableText(w io.Writer, pt schema.PresenceTable, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Author"}
	headers = append(headers, pt.Labels...)
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableAuthorWidth(cfg, len(pt.Labels))

	var data [][]string
	for _, row := range pt.Rows {
		rec := []string{contract.TruncateName(row.Author, maxWidth)}
		for _, label := range pt.Labels {
			rec = append(rec, strconv.Itoa(row.Values[label]))
		}
		data = append(data, rec)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d authors across %d datasets (%s aggregation)\n", len(pt.Rows), len(pt.Labels), pt.Mode); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVPresenceTable writes the presence table in CSV format.
func writeCSVPresenceTable(w io.Writer, pt schema.PresenceTable) error {
	header := []string{"author"}
	header = append(header, pt.Labels...)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range pt.Rows {
			rec := []string{row.Author}
			for _, label := range pt.Labels {
				rec = append(rec, strconv.Itoa(row.Values[label]))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
