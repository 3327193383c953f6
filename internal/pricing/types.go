// Package pricing is the single implementation of menu pricing: option
// selection validation, addon aggregation, promotion matching and final
// price resolution. It is pure — every function is a deterministic
// computation over the snapshot values passed in, with no clock, database
// or network access. The quote endpoint and the order checkout both call
// into this package so an order is always billed exactly what was quoted.
package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ChargeMode decides how the prices of multiple selected items inside one
// option group combine into the group's contribution to the unit price.
type ChargeMode string

const (
	ChargeSum ChargeMode = "SUM"
	ChargeMax ChargeMode = "MAX" // pay for the most expensive (half-and-half pizzas)
	ChargeMin ChargeMode = "MIN"
)

// RewardType enumerates what a triggered promotion does to its target.
type RewardType string

const (
	RewardItemFree        RewardType = "ITEM_FREE"
	RewardDiscountPercent RewardType = "DISCOUNT_PERCENT"
	RewardFixedPrice      RewardType = "FIXED_PRICE"
	RewardOptionFree      RewardType = "OPTION_FREE"
)

type OptionItem struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Available bool
}

// OptionGroup carries the selection constraints for one set of options.
// Max == 0 means no upper bound.
type OptionGroup struct {
	ID        int64
	Title     string
	Min       int
	Max       int
	Mode      ChargeMode
	Available bool
	Items     []OptionItem
}

// Product is the pricing view of a catalog product. PromoPrice is the
// product's own static promotional price; PromoDays restricts it to the
// listed weekdays (0=Sunday), an empty list meaning every day.
type Product struct {
	ID         int64
	Name       string
	Category   string
	Price      decimal.Decimal
	PromoPrice *decimal.Decimal
	PromoDays  []int
	Available  bool
	Groups     []OptionGroup
}

// Promotion is a dynamic pricing rule. The trigger is either a product id
// set or, when the set is empty, a category name; a promotion with neither
// never fires. The reward side targets either products (id set or, when
// empty, a category) or option items (id set only).
type Promotion struct {
	ID     int64
	Name   string
	Active bool
	Days   []int

	TriggerProductIDs []int64
	TriggerCategory   string

	Reward           RewardType
	RewardProductIDs []int64
	RewardCategory   string
	RewardOptionIDs  []int64

	Percent    decimal.Decimal
	FixedPrice decimal.Decimal
	MaxFreeQty int
}

// Line is one cart entry with its product resolved.
type Line struct {
	Product       Product
	Quantity      int
	OptionItemIDs []int64
}

// CartLine is the reduced per-line view the promotion matcher needs:
// trigger matching is purely presence-based, so product id and category
// are all it carries.
type CartLine struct {
	ProductID int64
	Category  string
}

// CartSnapshot is an explicit, immutable view of the whole cart used for
// trigger matching. Callers build it once per computation.
type CartSnapshot struct {
	Lines []CartLine
}

// Snapshot reduces resolved lines to the matcher's view of the cart.
func Snapshot(lines []Line) CartSnapshot {
	snap := CartSnapshot{Lines: make([]CartLine, 0, len(lines))}
	for _, l := range lines {
		snap.Lines = append(snap.Lines, CartLine{
			ProductID: l.Product.ID,
			Category:  l.Product.Category,
		})
	}
	return snap
}

// LinePrice is the resolver output for one line. Every field is derived;
// the persisted source of truth remains the product id, quantity and
// selected option ids.
type LinePrice struct {
	UnitBase    decimal.Decimal
	AddonsTotal decimal.Decimal
	UnitPrice   decimal.Decimal
	FreeQty     int
	LineTotal   decimal.Decimal
	Labels      []string
}

// CartPrice is the result of pricing a whole cart.
type CartPrice struct {
	Lines []LinePrice
	Total decimal.Decimal
}

// ParseDays parses the comma-separated weekday list used by the catalog
// ("0,2,5"). Blank entries and anything outside 0..6 are ignored.
func ParseDays(s string) []int {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			continue
		}
		days = append(days, d)
	}
	return days
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
