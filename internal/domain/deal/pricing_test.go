//go:build unit

package deal

import (
	"testing"

	"golden-travel/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected float64
		ok       bool
	}{
		{name: "plain number", input: ptr.To("1299.50"), expected: 1299.50, ok: true},
		{name: "euro symbol and comma", input: ptr.To("€1,299.50"), expected: 1299.50, ok: true},
		{name: "trailing euro with spaces", input: ptr.To(" 950 € "), expected: 950, ok: true},
		{name: "dollar symbol", input: ptr.To("$480"), expected: 480, ok: true},
		{name: "pound symbol", input: ptr.To("£1,000"), expected: 1000, ok: true},
		{name: "integer string", input: ptr.To("1299"), expected: 1299, ok: true},
		{name: "zero", input: ptr.To("0"), expected: 0, ok: true},
		{name: "negative", input: ptr.To("-15"), expected: -15, ok: true},
		{name: "nil", input: nil, ok: false},
		{name: "empty string", input: ptr.To(""), ok: false},
		{name: "only symbols", input: ptr.To("€ "), ok: false},
		{name: "garbage", input: ptr.To("call us"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 0.001)
			}
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "with percent sign", input: "15%", expected: 15},
		{name: "without percent sign", input: "20", expected: 20},
		{name: "decimal", input: "12.5%", expected: 12.5},
		{name: "padded", input: " 30% ", expected: 30},
		{name: "malformed counts as zero", input: "soon", expected: 0},
		{name: "empty counts as zero", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParsePercent(tt.input), 0.001)
		})
	}
}

func TestApplyPercent(t *testing.T) {
	t.Run("rounds to two decimals", func(t *testing.T) {
		assert.InDelta(t, 866.67, applyPercent(1300, 33.333), 0.001)
	})

	t.Run("zero percent leaves price unchanged", func(t *testing.T) {
		assert.InDelta(t, 1000, applyPercent(1000, 0), 0.001)
	})

	t.Run("full discount", func(t *testing.T) {
		assert.InDelta(t, 0, applyPercent(500, 100), 0.001)
	})
}

func TestDerivePercent(t *testing.T) {
	tests := []struct {
		name       string
		original   float64
		discounted float64
		expected   string
	}{
		{name: "clean twenty percent", original: 1000, discounted: 800, expected: "20%"},
		{name: "rounds to whole number", original: 899, discounted: 600, expected: "33%"},
		{name: "small discount", original: 1000, discounted: 995, expected: "1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, derivePercent(tt.original, tt.discounted))
		})
	}
}
