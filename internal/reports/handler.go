package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
	loc  *time.Location
	now  func() time.Time
}

func NewHandler(repo *Repo, loc *time.Location) *Handler {
	return &Handler{repo: repo, loc: loc, now: time.Now}
}

// parseRange reads from/to as YYYY-MM-DD in the store's timezone,
// defaulting to the current day. The upper bound is exclusive.
func (h *Handler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.now().In(h.loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	to := from.AddDate(0, 0, 1)

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return time.Time{}, time.Time{}, false
		}
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty date range"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *Handler) AdminSummary(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	summary, err := h.repo.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	byCategory, err := h.repo.ByCategory(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("top"))
	topProducts, err := h.repo.TopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":      summary,
		"by_category":  byCategory,
		"top_products": topProducts,
	})
}
