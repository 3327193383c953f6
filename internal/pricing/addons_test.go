package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func prices(vals ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestAggregateAddons(t *testing.T) {
	tests := []struct {
		name   string
		mode   ChargeMode
		prices []decimal.Decimal
		want   string
	}{
		{"sum", ChargeSum, prices(10, 15, 7), "32"},
		{"max", ChargeMax, prices(10, 15, 7), "15"},
		{"min", ChargeMin, prices(10, 15, 7), "7"},
		{"single", ChargeMax, prices(12.5), "12.5"},
		{"empty sum", ChargeSum, nil, "0"},
		{"empty max", ChargeMax, nil, "0"},
		{"sum rounds to cents", ChargeSum, prices(1.005, 1.005), "2.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateAddons(tt.mode, tt.prices)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("AggregateAddons(%s) = %s, want %s", tt.mode, got, tt.want)
			}
		})
	}
}
