package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/pricing"
)

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID          int64            `json:"id"`
	CategoryID  int64            `json:"category_id"`
	Category    string           `json:"category,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	PromoPrice  *decimal.Decimal `json:"promo_price,omitempty"`
	PromoDays   string           `json:"promo_days,omitempty"` // comma list, 0=Sunday
	IsAvailable bool             `json:"is_available"`
	SortOrder   int              `json:"sort_order"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Groups      []OptionGroup    `json:"groups,omitempty"`
}

type OptionGroup struct {
	ID          int64        `json:"id"`
	ProductID   int64        `json:"product_id"`
	Title       string       `json:"title"`
	MinSelect   int          `json:"min_select"`
	MaxSelect   int          `json:"max_select"`
	ChargeMode  string       `json:"charge_mode"` // SUM, MAX or MIN
	IsAvailable bool         `json:"is_available"`
	SortOrder   int          `json:"sort_order"`
	Items       []OptionItem `json:"items,omitempty"`
}

type OptionItem struct {
	ID          int64           `json:"id"`
	GroupID     int64           `json:"group_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	SortOrder   int             `json:"sort_order"`
}

// Pricing converts the persisted product into the pricing package's pure
// input type, parsing the comma-separated promo weekday list.
func (p Product) Pricing() pricing.Product {
	out := pricing.Product{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		PromoPrice: p.PromoPrice,
		PromoDays:  pricing.ParseDays(p.PromoDays),
		Available:  p.IsAvailable,
	}
	for _, g := range p.Groups {
		pg := pricing.OptionGroup{
			ID:        g.ID,
			Title:     g.Title,
			Min:       g.MinSelect,
			Max:       g.MaxSelect,
			Mode:      pricing.ChargeMode(g.ChargeMode),
			Available: g.IsAvailable,
		}
		for _, it := range g.Items {
			pg.Items = append(pg.Items, pricing.OptionItem{
				ID:        it.ID,
				Name:      it.Name,
				Price:     it.Price,
				Available: it.IsAvailable,
			})
		}
		out.Groups = append(out.Groups, pg)
	}
	return out
}
