package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantizeToStep(t *testing.T) {
	testCases := []struct {
		desc     string
		qty      string
		step     string
		expected string
	}{
		{"floors to step", "12.345", "0.01", "12.34"},
		{"already aligned", "0.50000", "0.0001", "0.5"},
		{"coarse step", "7.9", "1", "7"},
		{"step larger than qty", "0.0005", "0.001", "0"},
		{"exact multiple", "10", "0.5", "10"},
		{"tiny step", "1.23456789", "0.00000001", "1.23456789"},
		{"non-decimal step", "1", "0.3", "0.9"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := QuantizeToStep(decimal.RequireFromString(tc.qty), decimal.RequireFromString(tc.step))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"quantize(%s, %s) = %s, want %s", tc.qty, tc.step, got, tc.expected)
		})
	}
}

// quantize(q,s) must be idempotent, never exceed q, and land on an exact
// multiple of s.
func TestQuantizeToStepProperties(t *testing.T) {
	qtys := []string{"0.00000001", "0.1", "0.333333", "1", "12.345", "99.9999", "1000000.000001"}
	steps := []string{"0.00000001", "0.0001", "0.01", "0.1", "0.5", "1", "10"}

	for _, rawQty := range qtys {
		for _, rawStep := range steps {
			q := decimal.RequireFromString(rawQty)
			s := decimal.RequireFromString(rawStep)
			got := QuantizeToStep(q, s)

			assert.True(t, got.LessThanOrEqual(q), "quantize(%s, %s) = %s exceeds input", q, s, got)
			assert.True(t, got.Mod(s).IsZero(), "quantize(%s, %s) = %s is not a multiple of step", q, s, got)
			again := QuantizeToStep(got, s)
			assert.True(t, again.Equal(got), "quantize not idempotent for (%s, %s): %s then %s", q, s, got, again)
		}
	}
}
