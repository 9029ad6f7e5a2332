package exporter

import "strconv"

// formatFloat formats a float64 for CSV output using the shortest
// representation that round-trips, so sums like 12.5 stay 12.5 and whole
// numbers stay bare integers.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
