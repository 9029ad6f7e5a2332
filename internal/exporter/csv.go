package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"aggcli/internal/dataprocessing"
)

// CSVWriter writes totals as delimited text with a Category,Value header.
type CSVWriter struct{}

// Write serializes totals to w.
func (cw *CSVWriter) Write(w io.Writer, totals []dataprocessing.CategoryTotal) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{dataprocessing.ColumnCategory, dataprocessing.ColumnValue}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, total := range totals {
		rec := []string{total.Category, formatFloat(total.Value)}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
