package orders

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/quote"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/receipt"
)

type Handler struct {
	svc       *Service
	repo      *Repo
	storeName string
}

func NewHandler(svc *Service, repo *Repo, storeName string) *Handler {
	return &Handler{svc: svc, repo: repo, storeName: storeName}
}

type CreateOrderReq struct {
	Type          string            `json:"type" binding:"required,oneof=DELIVERY DINE_IN"`
	TableID       *int64            `json:"table_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	Address       string            `json:"address"`
	Items         []quote.ItemInput `json:"items" binding:"required,min=1,dive"`
}

// Public: submit an order. Prices come from the server-side quote, never
// from the client.
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Type == order.TypeDineIn && req.TableID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table_id is required for dine-in orders"})
		return
	}
	if req.Type == order.TypeDelivery && req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required for delivery orders"})
		return
	}

	created, q, err := h.svc.Create(c.Request.Context(), CreateInput{
		Type:          req.Type,
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Items:         req.Items,
	})
	if errors.Is(err, ErrInvalidItems) {
		c.JSON(http.StatusUnprocessableEntity, q)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Public: track an order by its code
func (h *Handler) GetByCode(c *gin.Context) {
	o, err := h.repo.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) AdminList(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.repo.List(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=PREPARING READY OUT_FOR_DELIVERY DELIVERED CANCELED"`
}

func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if errors.Is(err, ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Admin: raw ESC/POS ticket bytes (kind=kitchen|customer), ready to be
// spooled to the printer.
func (h *Handler) AdminReceipt(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	o, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	var ticket []byte
	switch c.DefaultQuery("kind", "customer") {
	case "kitchen":
		ticket = receipt.RenderKitchen(h.storeName, o)
	case "customer":
		ticket = receipt.RenderCustomer(h.storeName, o)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown receipt kind"})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", ticket)
}
