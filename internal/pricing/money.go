package pricing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
)

// round2 rounds to cents. The contract is that every money-producing step
// rounds before its result feeds any further arithmetic, so intermediate
// values are always representable amounts.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// applyPercent returns price discounted by pct percent, rounded to cents.
func applyPercent(price, pct decimal.Decimal) decimal.Decimal {
	return round2(price.Mul(hundred.Sub(pct)).Div(hundred))
}
