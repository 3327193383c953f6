// Package notify builds the order confirmation message sent to customers.
// The delivery channel (WhatsApp) is an external collaborator; this package
// only produces the text and hands it to a Notifier.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

type Notifier interface {
	OrderConfirmed(ctx context.Context, o order.Order) error
}

// OrderMessage renders the customer-facing confirmation text.
func OrderMessage(storeName string, o order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", storeName)
	fmt.Fprintf(&b, "Pedido %s confirmado!\n\n", o.Code)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%dx %s", it.Quantity, it.ProductName)
		if len(it.OptionNames) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(it.OptionNames, ", "))
		}
		fmt.Fprintf(&b, " - %s\n", it.LineTotal.StringFixed(2))
		if it.Observation != "" {
			fmt.Fprintf(&b, "  obs: %s\n", it.Observation)
		}
		for _, label := range it.PromoLabels {
			fmt.Fprintf(&b, "  promo: %s\n", label)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %s", o.Total.StringFixed(2))
	if o.Type == order.TypeDelivery && o.Address != "" {
		fmt.Fprintf(&b, "\nEntrega: %s", o.Address)
	}
	return b.String()
}

// Log writes the message to the structured log. It stands in wherever a
// real WhatsApp gateway is not configured.
type Log struct {
	StoreName string
	Logger    *slog.Logger
}

func (l Log) OrderConfirmed(_ context.Context, o order.Order) error {
	l.Logger.Info("order confirmation",
		"code", o.Code,
		"phone", o.CustomerPhone,
		"message", OrderMessage(l.StoreName, o),
	)
	return nil
}
