package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "10", 10, true},
		{"negative", "-3", -3, true},
		{"explicit plus", "+7", 7, true},
		{"decimal", "2.5", 2.5, true},
		{"bare fraction", ".5", 0.5, true},
		{"trailing dot", "4.", 4, true},
		{"exponent", "1e3", 1000, true},
		{"signed exponent", "2.5E-1", 0.25, true},
		{"surrounding whitespace", "  12  ", 12, true},
		{"zero", "0", 0, true},

		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"alphabetic", "x", 0, false},
		{"mixed", "10a", 0, false},
		{"symbols", "$5", 0, false},
		{"thousands separator", "1,000", 0, false},
		{"inf spelling", "Inf", 0, false},
		{"nan spelling", "NaN", 0, false},
		{"hex float", "0x1p-2", 0, false},
		{"underscore digits", "1_000", 0, false},
		{"double dot", "1.2.3", 0, false},
		{"lone sign", "-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceValue(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
