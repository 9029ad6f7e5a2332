package dataprocessing

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	apperrors "aggcli/internal/errors"
)

// utf8BOM is the byte order mark some spreadsheet exporters prepend to CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFile reads a comma-delimited UTF-8 file with a header row into a
// Dataset. A missing or unreadable file maps to INPUT_NOT_FOUND; any
// structural problem (no header, inconsistent field count, bad quoting,
// invalid UTF-8) maps to MALFORMED_INPUT.
func ParseFile(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.InputNotFound(path, err)
	}
	if info.IsDir() {
		return nil, apperrors.InputNotFound(path, fmt.Errorf("%s is a directory", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputNotFound(path, err)
	}
	defer f.Close()

	ds, err := parse(f)
	if err != nil {
		return nil, err
	}
	ds.Path = path

	slog.Debug("Parsed input file",
		slog.String("path", path),
		slog.Int("columns", len(ds.Header)),
		slog.Int("rows", len(ds.Records)))

	return ds, nil
}

// parse reads CSV content from r into a Dataset.
func parse(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, apperrors.MalformedInput(err)
	}

	reader := csv.NewReader(br)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.MalformedInput(fmt.Errorf("empty input: missing header row"))
	}
	if err != nil {
		return nil, apperrors.MalformedInput(err)
	}
	if err := validateEncoding(header); err != nil {
		return nil, apperrors.MalformedInput(err)
	}

	ds := &Dataset{Header: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.MalformedInput(err)
		}
		if err := validateEncoding(row); err != nil {
			return nil, apperrors.MalformedInput(err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// skipBOM discards a leading UTF-8 byte order mark if present.
func skipBOM(br *bufio.Reader) error {
	head, err := br.Peek(len(utf8BOM))
	if err != nil {
		// Short or empty input; let the CSV reader report it.
		return nil
	}
	if head[0] == utf8BOM[0] && head[1] == utf8BOM[1] && head[2] == utf8BOM[2] {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}

// validateEncoding rejects rows containing invalid UTF-8.
func validateEncoding(fields []string) error {
	for i, field := range fields {
		if !utf8.ValidString(field) {
			return fmt.Errorf("invalid UTF-8 in field %d", i)
		}
	}
	return nil
}
