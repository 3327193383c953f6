package reports

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rangeHandler(t *testing.T) *Handler {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	return &Handler{
		loc: loc,
		now: func() time.Time { return time.Date(2026, 8, 30, 15, 0, 0, 0, loc) },
	}
}

func rangeRequest(query string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/summary"+query, nil)
	return c, w
}

func TestParseRangeDefaultsToToday(t *testing.T) {
	h := rangeHandler(t)
	c, _ := rangeRequest("")

	from, to, ok := h.parseRange(c)
	if !ok {
		t.Fatal("default range should parse")
	}
	wantFrom := time.Date(2026, 8, 30, 0, 0, 0, 0, h.loc)
	if !from.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("to = %v, want next midnight", to)
	}
}

func TestParseRangeExplicitBoundsExclusiveUpper(t *testing.T) {
	h := rangeHandler(t)
	c, _ := rangeRequest("?from=2026-08-01&to=2026-08-10")

	from, to, ok := h.parseRange(c)
	if !ok {
		t.Fatal("explicit range should parse")
	}
	if !from.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, h.loc)) {
		t.Errorf("from = %v", from)
	}
	// to=2026-08-10 includes the whole 10th
	if !to.Equal(time.Date(2026, 8, 11, 0, 0, 0, 0, h.loc)) {
		t.Errorf("to = %v, want midnight of the 11th", to)
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	h := rangeHandler(t)

	c, w := rangeRequest("?from=yesterday")
	if _, _, ok := h.parseRange(c); ok {
		t.Error("malformed date should not parse")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	c, w = rangeRequest("?from=2026-08-10&to=2026-08-01")
	if _, _, ok := h.parseRange(c); ok {
		t.Error("inverted range should not parse")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
