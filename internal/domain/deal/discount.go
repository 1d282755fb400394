package deal

// EffectiveDiscount is the single percent/price pair chosen by the priority
// chain. A nil Percent with a non-nil Price means "no discount, price
// unchanged"; both nil means the original price was absent or unparseable.
type EffectiveDiscount struct {
	Percent *string
	Price   *float64
}

// DiscountSource yields an optional percent string. DateOption, Deal and
// Category each implement it; the chain consults them in that order.
type DiscountSource interface {
	DiscountPercent() *string
}

type discountRule struct {
	source DiscountSource
	// Date-level percents are honored even when they parse to 0 (a
	// malformed value leaves the price unchanged but echoes the raw
	// string). Deal and category fallbacks apply only when positive.
	requirePositive bool
}

// ResolveEffectiveDiscount runs the strict priority chain:
// date percent, then deal percent, then category percent, then none.
// First match wins; percents are never blended.
func ResolveEffectiveDiscount(opt *DateOption, dl *Deal) EffectiveDiscount {
	original, ok := ParsePrice(opt.OriginalPrice())
	if !ok {
		return EffectiveDiscount{}
	}
	if original <= 0 {
		return EffectiveDiscount{Price: &original}
	}

	rules := []discountRule{{source: opt}}
	if dl != nil {
		rules = append(rules, discountRule{source: dl, requirePositive: true})
		if cat := dl.Category(); cat != nil {
			rules = append(rules, discountRule{source: cat, requirePositive: true})
		}
	}

	for _, rule := range rules {
		pct := rule.source.DiscountPercent()
		if pct == nil {
			continue
		}
		value := ParsePercent(*pct)
		if rule.requirePositive && value <= 0 {
			continue
		}
		price := applyPercent(original, value)
		return EffectiveDiscount{Percent: pct, Price: &price}
	}

	return EffectiveDiscount{Price: &original}
}

// BestDiscount picks the date option with the highest resolved percent.
// Ties go to the first option encountered; options without a percent are
// skipped. Returns (nil, zero) when nothing has a discount.
func BestDiscount(options []*DateOption, dl *Deal) (*DateOption, EffectiveDiscount) {
	var bestOpt *DateOption
	var best EffectiveDiscount
	var bestValue float64

	for _, opt := range options {
		eff := ResolveEffectiveDiscount(opt, dl)
		if eff.Percent == nil {
			continue
		}
		value := ParsePercent(*eff.Percent)
		if bestOpt == nil || value > bestValue {
			bestOpt = opt
			best = eff
			bestValue = value
		}
	}

	return bestOpt, best
}
