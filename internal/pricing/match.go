package pricing

import "sort"

// ActiveOn reports whether the promotion runs on the given weekday
// (0=Sunday). An empty day list means every day.
func (p Promotion) ActiveOn(day int) bool {
	if !p.Active {
		return false
	}
	return len(p.Days) == 0 || containsDay(p.Days, day)
}

// configValid rejects promotions whose numeric parameters make no sense.
// Invalid promotions are skipped silently: a misconfigured rule must never
// block a checkout, it just stops granting anything.
func (p Promotion) configValid() bool {
	switch p.Reward {
	case RewardDiscountPercent:
		return p.Percent.IsPositive() && !p.Percent.GreaterThan(hundred)
	case RewardFixedPrice:
		return p.FixedPrice.IsPositive()
	case RewardItemFree:
		return p.MaxFreeQty >= 1
	case RewardOptionFree:
		return len(p.RewardOptionIDs) > 0
	default:
		return false
	}
}

// triggeredBy reports whether the cart satisfies the promotion's trigger:
// any line whose product id is in the trigger set, or, when no id set is
// given, any line whose category equals the trigger category. A promotion
// with neither fails closed and never fires.
func (p Promotion) triggeredBy(cart CartSnapshot) bool {
	if len(p.TriggerProductIDs) > 0 {
		for _, l := range cart.Lines {
			if containsID(p.TriggerProductIDs, l.ProductID) {
				return true
			}
		}
		return false
	}
	if p.TriggerCategory == "" {
		return false
	}
	for _, l := range cart.Lines {
		if l.Category == p.TriggerCategory {
			return true
		}
	}
	return false
}

// triggers reports whether the given product is itself a trigger of the
// promotion. A triggering product never qualifies as the same promotion's
// reward, even when the trigger and reward sets overlap by category.
func (p Promotion) triggers(prod Product) bool {
	if len(p.TriggerProductIDs) > 0 {
		return containsID(p.TriggerProductIDs, prod.ID)
	}
	return p.TriggerCategory != "" && prod.Category == p.TriggerCategory
}

// rewardsProduct reports whether the product qualifies as a product-level
// reward target: id in the reward set, or, when the set is empty, a
// category match. Self-exclusion is checked by the caller via triggers.
func (p Promotion) rewardsProduct(prod Product) bool {
	if len(p.RewardProductIDs) > 0 {
		return containsID(p.RewardProductIDs, prod.ID)
	}
	return p.RewardCategory != "" && prod.Category == p.RewardCategory
}

// rewardsOption reports whether the option item qualifies as an
// option-level reward target. An empty set never adjusts option prices.
func (p Promotion) rewardsOption(itemID int64) bool {
	return len(p.RewardOptionIDs) > 0 && containsID(p.RewardOptionIDs, itemID)
}

// prepare filters the promotion set down to the rules that can apply today
// and orders it by id, which fixes the deterministic tie-break whenever two
// promotions produce the same price.
func prepare(promos []Promotion, day int) []Promotion {
	out := make([]Promotion, 0, len(promos))
	for _, p := range promos {
		if p.ActiveOn(day) && p.configValid() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
