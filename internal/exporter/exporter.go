package exporter

import (
	"fmt"
	"io"

	"aggcli/internal/dataprocessing"
)

// ResultWriter serializes a sequence of category totals to a destination.
type ResultWriter interface {
	Write(w io.Writer, totals []dataprocessing.CategoryTotal) error
}

// ForFormat returns the ResultWriter for a format name ("json" or "csv").
func ForFormat(format string, pretty bool) (ResultWriter, error) {
	switch format {
	case "json":
		return &JSONWriter{Pretty: pretty}, nil
	case "csv":
		return &CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
