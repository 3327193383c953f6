package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/pricing"
)

// Reward types, mirrored by the pricing package.
const (
	RewardItemFree        = "ITEM_FREE"
	RewardDiscountPercent = "DISCOUNT_PERCENT"
	RewardFixedPrice      = "FIXED_PRICE"
	RewardOptionFree      = "OPTION_FREE"
)

type Promotion struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Days     string `json:"days,omitempty"` // comma list, 0=Sunday; empty means every day

	TriggerProductIDs []int64 `json:"trigger_product_ids,omitempty"`
	TriggerCategory   string  `json:"trigger_category,omitempty"`

	RewardType       string  `json:"reward_type"`
	RewardProductIDs []int64 `json:"reward_product_ids,omitempty"`
	RewardCategory   string  `json:"reward_category,omitempty"`
	RewardOptionIDs  []int64 `json:"reward_option_item_ids,omitempty"`

	DiscountPercent decimal.Decimal `json:"discount_percent"`
	FixedPrice      decimal.Decimal `json:"fixed_price"`
	MaxFreeQty      int             `json:"max_free_qty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pricing converts the persisted promotion into the pricing input type.
func (p Promotion) Pricing() pricing.Promotion {
	return pricing.Promotion{
		ID:     p.ID,
		Name:   p.Name,
		Active: p.IsActive,
		Days:   pricing.ParseDays(p.Days),

		TriggerProductIDs: p.TriggerProductIDs,
		TriggerCategory:   p.TriggerCategory,

		Reward:           pricing.RewardType(p.RewardType),
		RewardProductIDs: p.RewardProductIDs,
		RewardCategory:   p.RewardCategory,
		RewardOptionIDs:  p.RewardOptionIDs,

		Percent:    p.DiscountPercent,
		FixedPrice: p.FixedPrice,
		MaxFreeQty: p.MaxFreeQty,
	}
}

// PricingSet converts a slice of persisted promotions at once.
func PricingSet(promos []Promotion) []pricing.Promotion {
	out := make([]pricing.Promotion, 0, len(promos))
	for _, p := range promos {
		out = append(out, p.Pricing())
	}
	return out
}
