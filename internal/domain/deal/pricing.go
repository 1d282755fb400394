package deal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Monetary values arrive as display strings ("€1,299.50", "1299", " 950 € ").
// Symbols and separators are stripped before parsing; failures mean "no value",
// never an error surfaced to callers.
var priceCleaner = strings.NewReplacer("€", "", "$", "", "£", "", ",", "", " ", "", " ", "")

func ParsePrice(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	cleaned := strings.TrimSpace(priceCleaner.Replace(*s))
	if cleaned == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}

// ParsePercent reads "15%" style strings. Malformed input counts as 0.
func ParsePercent(s string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func applyPercent(original, percent float64) float64 {
	o := decimal.NewFromFloat(original)
	p := decimal.NewFromFloat(percent)
	discounted := o.Mul(decimal.NewFromInt(1).Sub(p.Div(decimal.NewFromInt(100))))
	f, _ := discounted.Round(2).Float64()
	return f
}

func derivePercent(original, discounted float64) string {
	o := decimal.NewFromFloat(original)
	d := decimal.NewFromFloat(discounted)
	p := o.Sub(d).Div(o).Mul(decimal.NewFromInt(100)).Round(0)
	return p.String() + "%"
}
