package tables

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/orders"
)

type Handler struct {
	repo   *Repo
	orders *orders.Repo
}

func NewHandler(repo *Repo, ordersRepo *orders.Repo) *Handler {
	return &Handler{repo: repo, orders: ordersRepo}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateTableReq struct {
	Number int    `json:"number" binding:"required,min=1"`
	Label  string `json:"label"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.repo.Create(c.Request.Context(), req.Number, req.Label)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Open(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	t, err := h.repo.Open(c.Request.Context(), id)
	if errors.Is(err, ErrTableNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	if errors.Is(err, ErrTableOccupied) {
		c.JSON(http.StatusConflict, gin.H{"error": "table already occupied"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open table"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// Session returns the open table's accumulated orders and running total.
func (h *Handler) Session(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	t, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	if t.OpenedAt == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "table is not open"})
		return
	}

	sessionOrders, err := h.orders.ListOpenForTable(c.Request.Context(), t.ID, *t.OpenedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load table orders"})
		return
	}

	total := decimal.Zero
	for _, o := range sessionOrders {
		total = total.Add(o.Total).Round(2)
	}
	c.JSON(http.StatusOK, gin.H{"table": t, "orders": sessionOrders, "total": total})
}

// Close frees the table and returns the final bill.
func (h *Handler) Close(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	t, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	if t.OpenedAt == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "table is not open"})
		return
	}

	sessionOrders, err := h.orders.ListOpenForTable(c.Request.Context(), t.ID, *t.OpenedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load table orders"})
		return
	}
	total := decimal.Zero
	for _, o := range sessionOrders {
		total = total.Add(o.Total).Round(2)
	}

	closed, err := h.repo.Close(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": closed, "orders": sessionOrders, "total": total})
}

func (h *Handler) AdminDelete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
