package pricing

import "github.com/shopspring/decimal"

// AggregateAddons combines the adjusted prices of the items selected in
// one group into that group's contribution to the unit price. An empty
// selection contributes zero. The result is rounded to cents before it is
// summed with other groups.
func AggregateAddons(mode ChargeMode, prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}

	switch mode {
	case ChargeMax:
		max := prices[0]
		for _, p := range prices[1:] {
			if p.GreaterThan(max) {
				max = p
			}
		}
		return round2(max)
	case ChargeMin:
		min := prices[0]
		for _, p := range prices[1:] {
			if p.LessThan(min) {
				min = p
			}
		}
		return round2(min)
	default: // ChargeSum
		sum := decimal.Zero
		for _, p := range prices {
			sum = sum.Add(p)
		}
		return round2(sum)
	}
}
