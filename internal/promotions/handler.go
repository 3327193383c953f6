package promotions

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
	// invalidate drops any cached promotion snapshot after an edit; nil
	// when no cache is configured
	invalidate func(context.Context)
}

func NewHandler(repo *Repo, invalidate func(context.Context)) *Handler {
	return &Handler{repo: repo, invalidate: invalidate}
}

func (h *Handler) invalidateCache(c *gin.Context) {
	if h.invalidate != nil {
		h.invalidate(c.Request.Context())
	}
}

func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list promotions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) AdminGet(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type PromotionReq struct {
	Name              string  `json:"name" binding:"required"`
	IsActive          bool    `json:"is_active"`
	Days              string  `json:"days"` // comma list, 0=Sunday
	TriggerProductIDs []int64 `json:"trigger_product_ids"`
	TriggerCategory   string  `json:"trigger_category"`
	RewardType        string  `json:"reward_type" binding:"required,oneof=ITEM_FREE DISCOUNT_PERCENT FIXED_PRICE OPTION_FREE"`
	RewardProductIDs  []int64 `json:"reward_product_ids"`
	RewardCategory    string  `json:"reward_category"`
	RewardOptionIDs   []int64 `json:"reward_option_item_ids"`
	DiscountPercent   string  `json:"discount_percent"`
	FixedPrice        string  `json:"fixed_price"`
	MaxFreeQty        int     `json:"max_free_qty"`
}

func (req PromotionReq) input() CreateInput {
	pct := req.DiscountPercent
	if pct == "" {
		pct = "0"
	}
	fixed := req.FixedPrice
	if fixed == "" {
		fixed = "0"
	}
	return CreateInput{
		Name:              req.Name,
		IsActive:          req.IsActive,
		Days:              req.Days,
		TriggerProductIDs: req.TriggerProductIDs,
		TriggerCategory:   req.TriggerCategory,
		RewardType:        req.RewardType,
		RewardProductIDs:  req.RewardProductIDs,
		RewardCategory:    req.RewardCategory,
		RewardOptionIDs:   req.RewardOptionIDs,
		DiscountPercent:   pct,
		FixedPrice:        fixed,
		MaxFreeQty:        req.MaxFreeQty,
	}
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req PromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), req.input())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create promotion"})
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req PromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, req.input())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update promotion"})
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete promotion"})
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
