package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/internal/parquet"
)

// ExecuteHistoryExport exports all stored metric reports to a Parquet file.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.ReportCount == 0 {
		return errors.New("no report history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.RunCount)
	fmt.Printf("Total metric reports: %d\n", status.ReportCount)

	reports, err := store.ListReports()
	if err != nil {
		return fmt.Errorf("failed to retrieve metric reports: %w", err)
	}

	rows := parquet.ConvertMetricReports(reports)
	if err := parquet.WriteMetricReportsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write metric reports: %w", err)
	}
	fmt.Printf("Exported %d metric reports to: %s\n", len(rows), outputFile)

	return nil
}
