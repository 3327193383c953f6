package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Delivery orders move through out-for-delivery, dine-in
// orders through ready; both end delivered or canceled.
const (
	StatusReceived  = "RECEIVED"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusOnRoute   = "OUT_FOR_DELIVERY"
	StatusDelivered = "DELIVERED"
	StatusCanceled  = "CANCELED"
)

const (
	TypeDelivery = "DELIVERY"
	TypeDineIn   = "DINE_IN"
)

type Order struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"` // public lookup code
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	TableID       *int64          `json:"table_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []Item          `json:"items,omitempty"`
}

// Item keeps both the pricing inputs (product id, quantity, option ids)
// and the computed outputs. The inputs are the source of truth: the stored
// prices can be re-derived from them at any time.
type Item struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	OptionItemIDs []int64         `json:"option_item_ids,omitempty"`
	OptionNames   []string        `json:"option_names,omitempty"`
	Observation   string          `json:"observation,omitempty"`
	UnitBase      decimal.Decimal `json:"unit_base"`
	AddonsTotal   decimal.Decimal `json:"addons_total"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	FreeQty       int             `json:"free_qty"`
	LineTotal     decimal.Decimal `json:"line_total"`
	PromoLabels   []string        `json:"promotion_labels,omitempty"`
}

// ValidTransition reports whether a status change is allowed.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusReceived:
		return to == StatusPreparing || to == StatusCanceled
	case StatusPreparing:
		return to == StatusReady || to == StatusOnRoute || to == StatusCanceled
	case StatusReady, StatusOnRoute:
		return to == StatusDelivered || to == StatusCanceled
	default:
		return false
	}
}
