package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testProduct() Product {
	return Product{
		ID:        1,
		Name:      "Pizza Grande",
		Category:  "Pizzas",
		Price:     decimal.NewFromInt(40),
		Available: true,
		Groups: []OptionGroup{
			{
				ID: 10, Title: "Sabores", Min: 1, Max: 2, Mode: ChargeMax, Available: true,
				Items: []OptionItem{
					{ID: 100, Name: "Calabresa", Price: decimal.Zero, Available: true},
					{ID: 101, Name: "Quatro Queijos", Price: decimal.NewFromInt(4), Available: true},
					{ID: 102, Name: "Indisponivel", Price: decimal.Zero, Available: false},
				},
			},
			{
				ID: 11, Title: "Borda", Min: 0, Max: 1, Mode: ChargeSum, Available: true,
				Items: []OptionItem{
					{ID: 110, Name: "Catupiry", Price: decimal.NewFromInt(8), Available: true},
				},
			},
		},
	}
}

func TestValidateSelection_OK(t *testing.T) {
	p := testProduct()
	if err := ValidateSelection(p, []int64{100, 110}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSelection_MinViolated(t *testing.T) {
	p := testProduct()
	err := ValidateSelection(p, nil)
	var sel *InvalidSelectionError
	if !errors.As(err, &sel) {
		t.Fatalf("expected InvalidSelectionError, got %v", err)
	}
	if sel.GroupTitle != "Sabores" || sel.Selected != 0 || sel.Min != 1 {
		t.Errorf("unexpected error detail: %+v", sel)
	}
}

func TestValidateSelection_MaxViolated(t *testing.T) {
	p := testProduct()
	p.Groups[0].Items = append(p.Groups[0].Items, OptionItem{ID: 103, Name: "Portuguesa", Available: true})
	err := ValidateSelection(p, []int64{100, 101, 103})
	var sel *InvalidSelectionError
	if !errors.As(err, &sel) {
		t.Fatalf("expected InvalidSelectionError, got %v", err)
	}
	if sel.Selected != 3 || sel.Max != 2 {
		t.Errorf("unexpected error detail: %+v", sel)
	}
}

func TestValidateSelection_ProductUnavailable(t *testing.T) {
	p := testProduct()
	p.Available = false
	if err := ValidateSelection(p, []int64{100}); !errors.Is(err, ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
}

func TestValidateSelection_ItemUnavailable(t *testing.T) {
	p := testProduct()
	err := ValidateSelection(p, []int64{100, 102})
	var item *OptionItemUnavailableError
	if !errors.As(err, &item) {
		t.Fatalf("expected OptionItemUnavailableError, got %v", err)
	}
	if item.ItemID != 102 {
		t.Errorf("expected item 102, got %d", item.ItemID)
	}
}

func TestValidateSelection_GroupUnavailable(t *testing.T) {
	p := testProduct()
	p.Groups[1].Available = false
	err := ValidateSelection(p, []int64{100, 110})
	var grp *OptionGroupUnavailableError
	if !errors.As(err, &grp) {
		t.Fatalf("expected OptionGroupUnavailableError, got %v", err)
	}
	if grp.GroupTitle != "Borda" {
		t.Errorf("expected group Borda, got %q", grp.GroupTitle)
	}
}

func TestValidateSelection_UnavailableGroupMinSkipped(t *testing.T) {
	p := testProduct()
	p.Groups[0].Available = false
	// nothing selected in the disabled required group: its min does not apply
	if err := ValidateSelection(p, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSelection_UnknownItem(t *testing.T) {
	p := testProduct()
	err := ValidateSelection(p, []int64{100, 999})
	var item *OptionItemUnavailableError
	if !errors.As(err, &item) {
		t.Fatalf("expected OptionItemUnavailableError, got %v", err)
	}
	if item.ItemID != 999 {
		t.Errorf("expected item 999, got %d", item.ItemID)
	}
}
