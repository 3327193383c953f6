package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTriggeredBy(t *testing.T) {
	cart := CartSnapshot{Lines: []CartLine{
		{ProductID: 1, Category: "Pizzas"},
		{ProductID: 2, Category: "Bebidas"},
	}}

	tests := []struct {
		name  string
		promo Promotion
		want  bool
	}{
		{"by product id", Promotion{TriggerProductIDs: []int64{2}}, true},
		{"id miss", Promotion{TriggerProductIDs: []int64{9}}, false},
		{"id set wins over category", Promotion{TriggerProductIDs: []int64{9}, TriggerCategory: "Pizzas"}, false},
		{"by category", Promotion{TriggerCategory: "Bebidas"}, true},
		{"category miss", Promotion{TriggerCategory: "Sobremesas"}, false},
		{"no trigger fails closed", Promotion{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.promo.triggeredBy(cart); got != tt.want {
				t.Errorf("triggeredBy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriggersSelfExclusion(t *testing.T) {
	pizza := Product{ID: 1, Category: "Pizzas"}

	byID := Promotion{TriggerProductIDs: []int64{1}}
	if !byID.triggers(pizza) {
		t.Error("product in trigger id set must count as a trigger")
	}
	byCat := Promotion{TriggerCategory: "Pizzas"}
	if !byCat.triggers(pizza) {
		t.Error("product in trigger category must count as a trigger")
	}
	other := Promotion{TriggerProductIDs: []int64{5}, TriggerCategory: "Pizzas"}
	if other.triggers(pizza) {
		t.Error("with a trigger id set, category must not be consulted")
	}
}

func TestRewardsProduct(t *testing.T) {
	drink := Product{ID: 2, Category: "Bebidas"}

	if !(Promotion{RewardProductIDs: []int64{2}}).rewardsProduct(drink) {
		t.Error("id set match expected")
	}
	if (Promotion{RewardProductIDs: []int64{3}, RewardCategory: "Bebidas"}).rewardsProduct(drink) {
		t.Error("non-empty id set must not fall back to category")
	}
	if !(Promotion{RewardCategory: "Bebidas"}).rewardsProduct(drink) {
		t.Error("category match expected when id set empty")
	}
	if (Promotion{}).rewardsProduct(drink) {
		t.Error("promotion without reward spec must not match")
	}
}

func TestRewardsOption(t *testing.T) {
	p := Promotion{RewardOptionIDs: []int64{100}}
	if !p.rewardsOption(100) || p.rewardsOption(101) {
		t.Error("option reward must match exactly the id set")
	}
	if (Promotion{}).rewardsOption(100) {
		t.Error("empty option id set never adjusts option prices")
	}
}

func TestConfigValid(t *testing.T) {
	pct := func(v string) Promotion {
		return Promotion{Reward: RewardDiscountPercent, Percent: decimal.RequireFromString(v)}
	}
	fixed := func(v string) Promotion {
		return Promotion{Reward: RewardFixedPrice, FixedPrice: decimal.RequireFromString(v)}
	}

	tests := []struct {
		name  string
		promo Promotion
		want  bool
	}{
		{"percent 30", pct("30"), true},
		{"percent 100", pct("100"), true},
		{"percent 0", pct("0"), false},
		{"percent negative", pct("-5"), false},
		{"percent over 100", pct("101"), false},
		{"fixed 9.90", fixed("9.90"), true},
		{"fixed 0", fixed("0"), false},
		{"fixed negative", fixed("-1"), false},
		{"item free qty 1", Promotion{Reward: RewardItemFree, MaxFreeQty: 1}, true},
		{"item free qty 0", Promotion{Reward: RewardItemFree}, false},
		{"option free with ids", Promotion{Reward: RewardOptionFree, RewardOptionIDs: []int64{1}}, true},
		{"option free empty", Promotion{Reward: RewardOptionFree}, false},
		{"unknown reward", Promotion{Reward: "CASHBACK"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.promo.configValid(); got != tt.want {
				t.Errorf("configValid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActiveOn(t *testing.T) {
	p := Promotion{Active: true, Days: []int{2, 4}}
	if !p.ActiveOn(2) || p.ActiveOn(3) {
		t.Error("day list must restrict activation")
	}
	everyDay := Promotion{Active: true}
	for d := 0; d <= 6; d++ {
		if !everyDay.ActiveOn(d) {
			t.Errorf("empty day list must mean every day, failed for %d", d)
		}
	}
	inactive := Promotion{Active: false, Days: []int{2}}
	if inactive.ActiveOn(2) {
		t.Error("inactive promotion must never be active")
	}
}

func TestParseDays(t *testing.T) {
	got := ParseDays(" 0, 2,5, x, 9 ,")
	want := []int{0, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("ParseDays = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseDays = %v, want %v", got, want)
		}
	}
	if ParseDays("") != nil {
		t.Error("empty list must parse to nil")
	}
}
