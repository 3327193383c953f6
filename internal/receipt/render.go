package receipt

import (
	"fmt"
	"strings"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

// RenderKitchen produces the preparation ticket: items, options and notes,
// no prices.
func RenderKitchen(storeName string, o order.Order) []byte {
	b := NewBuilder()
	b.AlignCenter().Bold(true).DoubleSize(true)
	b.Line(storeName)
	b.DoubleSize(false)
	b.Line("COZINHA")
	b.Bold(false).AlignLeft().Divider()

	b.Line(fmt.Sprintf("Pedido %s", shortCode(o.Code)))
	if o.TableID != nil {
		b.Bold(true).Line(fmt.Sprintf("MESA %d", *o.TableID)).Bold(false)
	}
	b.Line(o.CreatedAt.Format("02/01/2006 15:04"))
	b.Divider()

	for _, it := range o.Items {
		b.Bold(true).Line(fmt.Sprintf("%dx %s", it.Quantity, it.ProductName)).Bold(false)
		if len(it.OptionNames) > 0 {
			b.Line("  " + strings.Join(it.OptionNames, ", "))
		}
		if it.Observation != "" {
			b.Line("  OBS: " + it.Observation)
		}
	}

	b.Cut()
	return b.Bytes()
}

// RenderCustomer produces the priced receipt.
func RenderCustomer(storeName string, o order.Order) []byte {
	b := NewBuilder()
	b.AlignCenter().Bold(true).DoubleSize(true)
	b.Line(storeName)
	b.DoubleSize(false).Bold(false)
	b.Line(fmt.Sprintf("Pedido %s", shortCode(o.Code)))
	b.Line(o.CreatedAt.Format("02/01/2006 15:04"))
	b.AlignLeft().Divider()

	for _, it := range o.Items {
		b.Columns(fmt.Sprintf("%dx %s", it.Quantity, it.ProductName), it.LineTotal.StringFixed(2))
		if len(it.OptionNames) > 0 {
			b.Line("  " + strings.Join(it.OptionNames, ", "))
		}
		for _, label := range it.PromoLabels {
			b.Line("  " + label)
		}
		if it.FreeQty > 0 {
			b.Line(fmt.Sprintf("  %d gratis", it.FreeQty))
		}
	}

	b.Divider()
	b.Bold(true).Columns("TOTAL", o.Total.StringFixed(2)).Bold(false)
	if o.Type == order.TypeDelivery && o.Address != "" {
		b.Divider()
		b.Line("Entrega: " + o.Address)
		if o.CustomerName != "" {
			b.Line(o.CustomerName)
		}
		if o.CustomerPhone != "" {
			b.Line(o.CustomerPhone)
		}
	}

	b.Cut()
	return b.Bytes()
}

// shortCode keeps the first uuid segment, enough for staff to call out.
func shortCode(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return strings.ToUpper(code[:i])
	}
	return strings.ToUpper(code)
}
