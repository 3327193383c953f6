// Package events fans out order lifecycle events to kitchen displays and
// the admin dashboard. Consumers poll or subscribe; the publisher never
// blocks an order on delivery problems.
package events

import (
	"context"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

const (
	TopicOrderCreated = "orders.created"
	TopicOrderStatus  = "orders.status"
)

type OrderCreated struct {
	Order order.Order `json:"order"`
}

type OrderStatusChanged struct {
	OrderID  int64  `json:"order_id"`
	Code     string `json:"code"`
	Previous string `json:"previous"`
	Status   string `json:"status"`
}

type Publisher interface {
	OrderCreated(ctx context.Context, o order.Order) error
	OrderStatusChanged(ctx context.Context, o order.Order, previous string) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) OrderCreated(context.Context, order.Order) error               { return nil }
func (Noop) OrderStatusChanged(context.Context, order.Order, string) error { return nil }
func (Noop) Close() error                                                  { return nil }
