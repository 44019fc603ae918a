package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"length 0", 0},
		{"length 1", 1},
		{"length 9", 9},
		{"length 16", 16},
	}

	pattern := regexp.MustCompile(`^[a-z0-9]*$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Generate(tt.length)

			assert.Len(t, result, tt.length)
			assert.True(t, pattern.MatchString(result), "Generate(%d) = %q, want only [a-z0-9]", tt.length, result)
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	// Statistical check: with 36^9 possible values, near-total uniqueness
	// over 100 draws is expected from any sane randomness source.
	seen := make(map[string]bool)
	for range 100 {
		seen[Generate(9)] = true
	}

	assert.GreaterOrEqual(t, len(seen), 95, "Generate produced only %d unique values in 100 calls", len(seen))
}
