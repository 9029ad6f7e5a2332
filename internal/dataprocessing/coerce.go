package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalRe matches a plain decimal literal: optional sign, digits with an
// optional fractional part (or a bare fractional part), optional exponent.
// It deliberately excludes the extras strconv.ParseFloat would accept, such
// as "Inf", "NaN", hex floats, and digit-separating underscores; those are
// dirty cells, not numbers.
var decimalRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CoerceValue attempts to read a raw cell as a number. It returns the
// parsed value and true on success, or 0 and false for anything that is not
// a decimal numeric literal (empty cells, text, symbols). Coercion never
// fails the run; a false result marks the row for dropping.
func CoerceValue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Matched the literal shape but overflowed or similar.
		return 0, false
	}
	return v, true
}
