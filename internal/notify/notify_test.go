package notify

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

func TestOrderMessage(t *testing.T) {
	o := order.Order{
		Code:    "abc-123",
		Type:    order.TypeDelivery,
		Address: "Rua A, 10",
		Total:   decimal.RequireFromString("62.90"),
		Items: []order.Item{
			{
				ProductName: "Pizza Quatro Queijos", Quantity: 2,
				OptionNames: []string{"Borda Catupiry"},
				Observation: "bem assada",
				LineTotal:   decimal.RequireFromString("56.90"),
				PromoLabels: []string{"Terca em Dobro (1 free)"},
			},
			{ProductName: "Guarana", Quantity: 1, LineTotal: decimal.RequireFromString("6.00")},
		},
	}

	msg := OrderMessage("A Casa da Pizza", o)
	for _, want := range []string{
		"*A Casa da Pizza*",
		"Pedido abc-123 confirmado!",
		"2x Pizza Quatro Queijos (Borda Catupiry) - 56.90",
		"obs: bem assada",
		"promo: Terca em Dobro (1 free)",
		"1x Guarana - 6.00",
		"Total: 62.90",
		"Entrega: Rua A, 10",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}

func TestOrderMessageDineInOmitsAddress(t *testing.T) {
	o := order.Order{
		Code:  "abc-123",
		Type:  order.TypeDineIn,
		Total: decimal.RequireFromString("6.00"),
		Items: []order.Item{{ProductName: "Guarana", Quantity: 1, LineTotal: decimal.RequireFromString("6.00")}},
	}
	if msg := OrderMessage("A Casa da Pizza", o); strings.Contains(msg, "Entrega") {
		t.Errorf("dine-in message should not carry a delivery block\n%s", msg)
	}
}
