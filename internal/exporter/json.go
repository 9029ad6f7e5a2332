package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"aggcli/internal/dataprocessing"
)

// JSONWriter writes totals as a JSON array of {"Category","Value"} objects
// followed by a trailing newline. An empty result serializes as [], never
// null.
type JSONWriter struct {
	Pretty bool
}

// Write serializes totals to w.
func (jw *JSONWriter) Write(w io.Writer, totals []dataprocessing.CategoryTotal) error {
	if totals == nil {
		totals = []dataprocessing.CategoryTotal{}
	}

	var (
		data []byte
		err  error
	)
	if jw.Pretty {
		data, err = json.MarshalIndent(totals, "", "  ")
	} else {
		data, err = json.Marshal(totals)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
