// Package quote is the authoritative pricing boundary: it assembles the
// catalog/promotion snapshot, fixes the weekday once in the store's
// timezone and runs the pricing core. Order checkout reuses the same
// service so a persisted order can never disagree with its quote.
package quote

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/catalog"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/promotion"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/pricing"
)

// Catalog is the read-only product source. Missing ids are absent from the
// returned map.
type Catalog interface {
	ProductsForPricing(ctx context.Context, ids []int64) (map[int64]catalog.Product, error)
}

// PromotionSource yields the enabled promotion set; day filtering happens
// in the pricing core. The snapshot may be slightly stale, which is
// accepted: an in-flight quote may still use a just-deactivated promotion.
type PromotionSource interface {
	ListActive(ctx context.Context) ([]promotion.Promotion, error)
}

type Service struct {
	catalog Catalog
	promos  PromotionSource
	now     func() time.Time // already in the store's timezone
}

func NewService(cat Catalog, promos PromotionSource, now func() time.Time) *Service {
	return &Service{catalog: cat, promos: promos, now: now}
}

type ItemInput struct {
	ProductID     int64   `json:"product_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	OptionItemIDs []int64 `json:"option_item_ids"`
	Observation   string  `json:"observation"`
}

// ItemError is the structured per-line failure surfaced to the caller.
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Item struct {
	ProductID   int64            `json:"product_id"`
	Name        string           `json:"name,omitempty"`
	Quantity    int              `json:"quantity"`
	PickedItems []string         `json:"picked_items,omitempty"`
	Observation string           `json:"observation,omitempty"`
	Unit        *decimal.Decimal `json:"unit,omitempty"`
	UnitBase    *decimal.Decimal `json:"unit_base,omitempty"`
	AddonsTotal *decimal.Decimal `json:"addons_total,omitempty"`
	FreeQty     int              `json:"free_qty,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	Labels      []string         `json:"promotion_labels,omitempty"`
	Error       *ItemError       `json:"error,omitempty"`
}

type Quote struct {
	Day   int              `json:"day_of_week"`
	Items []Item           `json:"items"`
	Total *decimal.Decimal `json:"total,omitempty"`
}

// OK reports whether every line priced successfully.
func (q Quote) OK() bool {
	for _, it := range q.Items {
		if it.Error != nil {
			return false
		}
	}
	return true
}

// Quote prices the requested items. Infrastructure failures return an
// error; per-line validation failures come back inside the Quote with no
// order total — a quote with any failed line has no partial success.
func (s *Service) Quote(ctx context.Context, items []ItemInput) (Quote, error) {
	day := int(s.now().Weekday())
	q := Quote{Day: day, Items: make([]Item, len(items))}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.catalog.ProductsForPricing(ctx, ids)
	if err != nil {
		return Quote{}, errors.Wrap(err, "load products")
	}

	lines := make([]pricing.Line, len(items))
	failed := false
	for i, it := range items {
		q.Items[i] = Item{ProductID: it.ProductID, Quantity: it.Quantity, Observation: it.Observation}

		p, ok := products[it.ProductID]
		if !ok {
			q.Items[i].Error = itemError(pricing.ErrProductNotFound)
			failed = true
			continue
		}
		q.Items[i].Name = p.Name
		q.Items[i].PickedItems = pickedNames(p, it.OptionItemIDs)

		pp := p.Pricing()
		if err := pricing.ValidateSelection(pp, it.OptionItemIDs); err != nil {
			q.Items[i].Error = itemError(err)
			failed = true
			continue
		}
		lines[i] = pricing.Line{Product: pp, Quantity: it.Quantity, OptionItemIDs: it.OptionItemIDs}
	}
	if failed {
		return q, nil
	}

	promos, err := s.promos.ListActive(ctx)
	if err != nil {
		return Quote{}, errors.Wrap(err, "load promotions")
	}

	cp, err := pricing.PriceCart(lines, promotion.PricingSet(promos), day)
	if err != nil {
		// validation already passed above, so any line error here still maps
		// to the same structured taxonomy
		var le *pricing.LineError
		if errors.As(err, &le) {
			q.Items[le.Index].Error = itemError(le.Err)
			return q, nil
		}
		return Quote{}, errors.Wrap(err, "price cart")
	}

	for i := range q.Items {
		lp := cp.Lines[i]
		q.Items[i].Unit = &lp.UnitPrice
		q.Items[i].UnitBase = &lp.UnitBase
		q.Items[i].AddonsTotal = &lp.AddonsTotal
		q.Items[i].FreeQty = lp.FreeQty
		q.Items[i].Total = &lp.LineTotal
		q.Items[i].Labels = lp.Labels
	}
	q.Total = &cp.Total
	return q, nil
}

func pickedNames(p catalog.Product, selected []int64) []string {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[int64]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}
	var names []string
	for _, g := range p.Groups {
		for _, it := range g.Items {
			if want[it.ID] {
				names = append(names, it.Name)
			}
		}
	}
	return names
}

// itemError maps the pricing error taxonomy onto wire codes.
func itemError(err error) *ItemError {
	var (
		sel  *pricing.InvalidSelectionError
		grp  *pricing.OptionGroupUnavailableError
		item *pricing.OptionItemUnavailableError
	)
	switch {
	case errors.Is(err, pricing.ErrProductNotFound):
		return &ItemError{Code: "PRODUCT_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, pricing.ErrProductUnavailable):
		return &ItemError{Code: "PRODUCT_UNAVAILABLE", Message: err.Error()}
	case errors.As(err, &sel):
		return &ItemError{Code: "INVALID_SELECTION", Message: sel.Error()}
	case errors.As(err, &grp):
		return &ItemError{Code: "OPTION_GROUP_UNAVAILABLE", Message: grp.Error()}
	case errors.As(err, &item):
		return &ItemError{Code: "OPTION_ITEM_UNAVAILABLE", Message: item.Error()}
	default:
		return &ItemError{Code: "PRICING_FAILED", Message: err.Error()}
	}
}
