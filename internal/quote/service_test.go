package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/catalog"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/promotion"
)

type stubCatalog struct {
	products map[int64]catalog.Product
}

func (s stubCatalog) ProductsForPricing(_ context.Context, ids []int64) (map[int64]catalog.Product, error) {
	out := make(map[int64]catalog.Product)
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type stubPromos struct {
	promos []promotion.Promotion
}

func (s stubPromos) ListActive(_ context.Context) ([]promotion.Promotion, error) {
	return s.promos, nil
}

// 2026-08-30 is a Sunday in Sao Paulo.
func sundayClock() time.Time {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	return time.Date(2026, 8, 30, 19, 30, 0, 0, loc)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func pizzaCatalog() stubCatalog {
	return stubCatalog{products: map[int64]catalog.Product{
		1: {
			ID: 1, Name: "Pizza Margherita", Category: "pizzas",
			Price: dec("50.00"), IsAvailable: true,
			Groups: []catalog.OptionGroup{
				{
					ID: 10, Title: "Borda", MinSelect: 1, MaxSelect: 1,
					ChargeMode: "SUM", IsAvailable: true,
					Items: []catalog.OptionItem{
						{ID: 100, Name: "Catupiry", Price: dec("8.00"), IsAvailable: true},
					},
				},
			},
		},
		2: {
			ID: 2, Name: "Guarana Lata", Category: "bebidas",
			Price: dec("6.00"), IsAvailable: true,
		},
	}}
}

func TestQuoteAppliesSundayPromotion(t *testing.T) {
	promos := stubPromos{promos: []promotion.Promotion{
		{
			ID: 1, Name: "Domingo da Pizza", IsActive: true, Days: "0",
			TriggerCategory: "bebidas",
			RewardType:      promotion.RewardDiscountPercent,
			RewardCategory:  "pizzas", DiscountPercent: dec("10"),
		},
	}}
	svc := NewService(pizzaCatalog(), promos, sundayClock)

	q, err := svc.Quote(context.Background(), []ItemInput{
		{ProductID: 1, Quantity: 2, OptionItemIDs: []int64{100}},
		{ProductID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !q.OK() {
		t.Fatalf("quote failed: %+v", q.Items)
	}
	if q.Day != 0 {
		t.Fatalf("day = %d, want 0 (Sunday)", q.Day)
	}

	it := q.Items[0]
	// base 50.00 minus 10% = 45.00, plus 8.00 addon = 53.00, times 2
	if got := it.Unit.StringFixed(2); got != "53.00" {
		t.Errorf("unit = %s, want 53.00", got)
	}
	if got := it.Total.StringFixed(2); got != "106.00" {
		t.Errorf("line total = %s, want 106.00", got)
	}
	if got := q.Total.StringFixed(2); got != "112.00" {
		t.Errorf("total = %s, want 112.00", got)
	}
	if len(it.Labels) != 1 || it.Labels[0] != "Domingo da Pizza (10% off)" {
		t.Errorf("labels = %v", it.Labels)
	}
	if len(it.PickedItems) != 1 || it.PickedItems[0] != "Catupiry" {
		t.Errorf("picked items = %v", it.PickedItems)
	}
}

func TestQuoteUnknownProductFailsWholeQuote(t *testing.T) {
	svc := NewService(pizzaCatalog(), stubPromos{}, sundayClock)

	q, err := svc.Quote(context.Background(), []ItemInput{
		{ProductID: 2, Quantity: 1},
		{ProductID: 99, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.OK() {
		t.Fatal("quote should not be OK")
	}
	if q.Total != nil {
		t.Errorf("total should be withheld, got %s", q.Total)
	}
	if q.Items[0].Error != nil {
		t.Errorf("valid line carries error: %+v", q.Items[0].Error)
	}
	if q.Items[0].Unit != nil {
		t.Error("no line should be priced when any line fails")
	}
	if q.Items[1].Error == nil || q.Items[1].Error.Code != "PRODUCT_NOT_FOUND" {
		t.Errorf("error = %+v, want PRODUCT_NOT_FOUND", q.Items[1].Error)
	}
}

func TestQuoteInvalidSelectionCode(t *testing.T) {
	svc := NewService(pizzaCatalog(), stubPromos{}, sundayClock)

	// Borda requires exactly one selection
	q, err := svc.Quote(context.Background(), []ItemInput{
		{ProductID: 1, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.Items[0].Error == nil || q.Items[0].Error.Code != "INVALID_SELECTION" {
		t.Fatalf("error = %+v, want INVALID_SELECTION", q.Items[0].Error)
	}
}

func TestQuoteHandlerStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(pizzaCatalog(), stubPromos{}, sundayClock)
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/quote", h.Quote)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"items":[{"product_id":2,"quantity":1}]}`); w.Code != http.StatusOK {
		t.Errorf("valid quote: status = %d, want 200", w.Code)
	}

	w := post(`{"items":[{"product_id":99,"quantity":1}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("failed line: status = %d, want 422", w.Code)
	}
	var q Quote
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatal(err)
	}
	if q.Items[0].Error == nil {
		t.Error("422 body should carry the per-item error")
	}

	if w := post(`{"items":[]}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty items: status = %d, want 400", w.Code)
	}
}
