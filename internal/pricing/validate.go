package pricing

// ValidateSelection enforces the product's option-group constraints against
// a set of selected option item ids. The same check runs for the advisory
// client preview and for the authoritative quote, so given identical inputs
// the outcomes match exactly.
//
// Rules: the product must be available; every selected id must belong to an
// available item inside an available group of this product; and for each
// available group the count of selected (available) items must satisfy
// min <= count <= max, where max 0 means unbounded. Unavailable groups are
// skipped entirely, including their min bound.
func ValidateSelection(p Product, selectedIDs []int64) error {
	if !p.Available {
		return ErrProductUnavailable
	}

	selected := make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	known := make(map[int64]bool, len(selectedIDs))
	for _, g := range p.Groups {
		count := 0
		for _, it := range g.Items {
			if !selected[it.ID] {
				continue
			}
			known[it.ID] = true
			if !g.Available {
				return &OptionGroupUnavailableError{GroupTitle: g.Title}
			}
			if !it.Available {
				return &OptionItemUnavailableError{ItemID: it.ID, Name: it.Name}
			}
			count++
		}
		if !g.Available {
			continue
		}
		if count < g.Min || (g.Max > 0 && count > g.Max) {
			return &InvalidSelectionError{GroupTitle: g.Title, Min: g.Min, Max: g.Max, Selected: count}
		}
	}

	for id := range selected {
		if !known[id] {
			return &OptionItemUnavailableError{ItemID: id}
		}
	}
	return nil
}
