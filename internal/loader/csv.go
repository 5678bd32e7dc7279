// Package loader has the dataset ingestion logic for citescope.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/citescope/schema"
)

// CSVLoader reads citation datasets from CSV files. Each row is one cited
// work; the configured column holds a separator-joined author list.
type CSVLoader struct{}

// NewCSVLoader creates a new CSV dataset loader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load reads one CSV file and flattens its author column into a citation
// sequence. The dataset label is derived from the file name.
func (l *CSVLoader) Load(ctx context.Context, path, column, separator string) (schema.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Rows may have trailing blanks; tolerate ragged width

	header, err := reader.Read()
	if err == io.EOF {
		return schema.Dataset{}, fmt.Errorf("dataset %s has no header row", path)
	}
	if err != nil {
		return schema.Dataset{}, fmt.Errorf("read header: %w", err)
	}

	colIdx, err := findColumn(header, column)
	if err != nil {
		return schema.Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}

	var citations []string
	for {
		if err := ctx.Err(); err != nil {
			return schema.Dataset{}, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schema.Dataset{}, fmt.Errorf("read row: %w", err)
		}
		if colIdx >= len(record) {
			continue // Short row, no author cell
		}
		citations = append(citations, schema.SplitAuthors(record[colIdx], separator)...)
	}

	if len(citations) == 0 {
		return schema.Dataset{}, fmt.Errorf("dataset %s has no citation events in column %q", path, column)
	}

	return schema.Dataset{
		Label:     schema.DatasetLabel(path),
		Citations: citations,
	}, nil
}

// findColumn locates the author column in the header, case-insensitively.
func findColumn(header []string, column string) (int, error) {
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in header %v", column, header)
}
