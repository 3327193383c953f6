package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Resolve prices a single line: the product's effective base price for the
// day, the best applicable product-level promotion, promotion-adjusted
// option prices aggregated per group, and the resulting unit and line
// totals. ITEM_FREE rewards allocate across the whole cart and are only
// applied by PriceCart.
func Resolve(product Product, selectedIDs []int64, quantity int, cart CartSnapshot, promos []Promotion, day int) LinePrice {
	return resolveLine(product, selectedIDs, quantity, cart, prepare(promos, day), day)
}

// resolveLine assumes the promotion set has already been through prepare.
func resolveLine(product Product, selectedIDs []int64, quantity int, cart CartSnapshot, active []Promotion, day int) LinePrice {
	var labels []string
	seen := make(map[int64]bool)

	// Step 1: static promo price when it runs today, else the list price.
	unitBase := round2(product.Price)
	if product.PromoPrice != nil && (len(product.PromoDays) == 0 || containsDay(product.PromoDays, day)) {
		unitBase = round2(*product.PromoPrice)
	}

	// Step 2: best product-level dynamic promotion. A product that triggers
	// the promotion is excluded from its own reward, and competing
	// promotions are compared by resulting price, never stacked.
	best := unitBase
	var bestPromo *Promotion
	for i := range active {
		p := &active[i]
		if p.Reward != RewardDiscountPercent && p.Reward != RewardFixedPrice {
			continue
		}
		if !p.triggeredBy(cart) || p.triggers(product) || !p.rewardsProduct(product) {
			continue
		}
		var candidate decimal.Decimal
		if p.Reward == RewardDiscountPercent {
			candidate = applyPercent(unitBase, p.Percent)
		} else {
			candidate = round2(p.FixedPrice)
		}
		if candidate.LessThan(best) {
			best = candidate
			bestPromo = p
		}
	}
	if bestPromo != nil {
		unitBase = best
		seen[bestPromo.ID] = true
		labels = append(labels, productLabel(bestPromo))
	}

	// Step 3: promotion-adjusted option prices, aggregated per group.
	selected := make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	addonsTotal := decimal.Zero
	for _, g := range product.Groups {
		if !g.Available {
			continue
		}
		var prices []decimal.Decimal
		for _, it := range g.Items {
			if !selected[it.ID] || !it.Available {
				continue
			}
			adj, promo, label := adjustOptionPrice(it, cart, active)
			prices = append(prices, adj)
			if promo != nil && !seen[promo.ID] {
				seen[promo.ID] = true
				labels = append(labels, label)
			}
		}
		addonsTotal = round2(addonsTotal.Add(AggregateAddons(g.Mode, prices)))
	}

	unitPrice := round2(unitBase.Add(addonsTotal))
	return LinePrice{
		UnitBase:    unitBase,
		AddonsTotal: addonsTotal,
		UnitPrice:   unitPrice,
		LineTotal:   round2(unitPrice.Mul(decimal.NewFromInt(int64(quantity)))),
		Labels:      labels,
	}
}

// adjustOptionPrice returns the option item's price after the best
// matching option-level promotion. OPTION_FREE forces the price to zero
// and overrides every other promotion on the same item.
func adjustOptionPrice(it OptionItem, cart CartSnapshot, active []Promotion) (decimal.Decimal, *Promotion, string) {
	price := round2(it.Price)

	for i := range active {
		p := &active[i]
		if p.Reward == RewardOptionFree && p.rewardsOption(it.ID) && p.triggeredBy(cart) {
			return decimal.Zero, p, fmt.Sprintf("%s (free %s)", p.Name, it.Name)
		}
	}

	best := price
	var bestPromo *Promotion
	for i := range active {
		p := &active[i]
		if p.Reward != RewardDiscountPercent && p.Reward != RewardFixedPrice {
			continue
		}
		if !p.rewardsOption(it.ID) || !p.triggeredBy(cart) {
			continue
		}
		var candidate decimal.Decimal
		if p.Reward == RewardDiscountPercent {
			candidate = applyPercent(price, p.Percent)
		} else {
			candidate = round2(p.FixedPrice)
		}
		if candidate.LessThan(best) {
			best = candidate
			bestPromo = p
		}
	}
	if bestPromo == nil {
		return price, nil, ""
	}
	return best, bestPromo, fmt.Sprintf("%s (%s)", bestPromo.Name, it.Name)
}

// PriceCart validates and prices every line, then runs the single
// cart-wide ITEM_FREE pass: each free-item promotion hands out its budget
// to qualifying lines ordered by ascending unit base price, splitting a
// line into free and paid units when the budget runs out mid-line. A free
// unit zeroes its whole unit price, addons included.
//
// PriceCart is a pure function of its inputs; calling it twice with the
// same snapshot yields identical output.
func PriceCart(lines []Line, promos []Promotion, day int) (CartPrice, error) {
	snap := Snapshot(lines)
	active := prepare(promos, day)

	out := CartPrice{Lines: make([]LinePrice, len(lines))}
	for i, l := range lines {
		if err := ValidateSelection(l.Product, l.OptionItemIDs); err != nil {
			return CartPrice{}, &LineError{Index: i, Err: err}
		}
		out.Lines[i] = resolveLine(l.Product, l.OptionItemIDs, l.Quantity, snap, active, day)
	}

	for pi := range active {
		p := &active[pi]
		if p.Reward != RewardItemFree || !p.triggeredBy(snap) {
			continue
		}
		var idx []int
		for i := range lines {
			if p.rewardsProduct(lines[i].Product) && !p.triggers(lines[i].Product) {
				idx = append(idx, i)
			}
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return out.Lines[idx[a]].UnitBase.LessThan(out.Lines[idx[b]].UnitBase)
		})
		remaining := p.MaxFreeQty
		for _, i := range idx {
			if remaining == 0 {
				break
			}
			avail := lines[i].Quantity - out.Lines[i].FreeQty
			if avail <= 0 {
				continue
			}
			take := min(remaining, avail)
			out.Lines[i].FreeQty += take
			remaining -= take
			out.Lines[i].Labels = append(out.Lines[i].Labels, fmt.Sprintf("%s (%d free)", p.Name, take))
		}
	}

	total := decimal.Zero
	for i := range out.Lines {
		lp := &out.Lines[i]
		paid := lines[i].Quantity - lp.FreeQty
		lp.LineTotal = round2(lp.UnitPrice.Mul(decimal.NewFromInt(int64(paid))))
		total = round2(total.Add(lp.LineTotal))
	}
	out.Total = total
	return out, nil
}

func productLabel(p *Promotion) string {
	if p.Reward == RewardDiscountPercent {
		return fmt.Sprintf("%s (%s%% off)", p.Name, p.Percent.String())
	}
	return fmt.Sprintf("%s (for %s)", p.Name, p.FixedPrice.StringFixed(2))
}
