package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/pricing"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// Public: active categories for the menu navigation
func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.repo.ListCategories(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Public: list available products (optional category=slug)
func (h *Handler) ListPublic(c *gin.Context) {
	var cat *string
	if v := c.Query("category"); v != "" {
		cat = &v
	}

	items, err := h.repo.ListPublic(c.Request.Context(), cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Public: product details with option groups and items
func (h *Handler) GetPublic(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	p, err := h.repo.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if !p.IsAvailable {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type CreateCategoryReq struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

func (h *Handler) AdminCreateCategory(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cat, err := h.repo.CreateCategory(c.Request.Context(), req.Name, req.SortOrder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) AdminListCategories(c *gin.Context) {
	items, err := h.repo.ListCategories(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateOptionItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
	SortOrder   int    `json:"sort_order"`
}

type CreateOptionGroupReq struct {
	Title      string                `json:"title" binding:"required"`
	MinSelect  int                   `json:"min_select"`
	MaxSelect  int                   `json:"max_select"`
	ChargeMode string                `json:"charge_mode" binding:"required,oneof=SUM MAX MIN"`
	SortOrder  int                   `json:"sort_order"`
	Items      []CreateOptionItemReq `json:"items"`
}

type CreateProductReq struct {
	CategoryID  int64                  `json:"category_id" binding:"required"`
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"image_url"`
	Price       string                 `json:"price" binding:"required"`
	PromoPrice  *string                `json:"promo_price"`
	PromoDays   string                 `json:"promo_days"` // comma list, 0=Sunday
	SortOrder   int                    `json:"sort_order"`
	Groups      []CreateOptionGroupReq `json:"groups"`
}

// Admin: create product with its option tree
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	groups, bad := groupInputs(req.Groups)
	if bad != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group bounds: " + bad})
		return
	}

	in := CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		PromoPrice:  req.PromoPrice,
		PromoDays:   req.PromoDays,
		SortOrder:   req.SortOrder,
		Groups:      groups,
	}

	p, err := h.repo.CreateProduct(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// groupInputs maps the request shape onto repo inputs, returning the title
// of the first group with broken bounds.
func groupInputs(reqs []CreateOptionGroupReq) ([]CreateOptionGroupInput, string) {
	var out []CreateOptionGroupInput
	for _, g := range reqs {
		if g.MinSelect < 0 || (g.MaxSelect > 0 && g.MinSelect > g.MaxSelect) {
			return nil, g.Title
		}
		grp := CreateOptionGroupInput{
			Title:      g.Title,
			MinSelect:  g.MinSelect,
			MaxSelect:  g.MaxSelect,
			ChargeMode: g.ChargeMode,
			SortOrder:  g.SortOrder,
		}
		for _, it := range g.Items {
			avail := true
			if it.IsAvailable != nil {
				avail = *it.IsAvailable
			}
			grp.Items = append(grp.Items, CreateOptionItemInput{
				Name:        it.Name,
				Description: it.Description,
				ImageURL:    it.ImageURL,
				Price:       it.Price,
				IsAvailable: avail,
				SortOrder:   it.SortOrder,
			})
		}
		out = append(out, grp)
	}
	return out, ""
}

type ReplaceGroupsReq struct {
	Groups []CreateOptionGroupReq `json:"groups" binding:"dive"`
}

// Admin: replace a product's whole option tree
func (h *Handler) AdminReplaceGroups(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req ReplaceGroupsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	groups, bad := groupInputs(req.Groups)
	if bad != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group bounds: " + bad})
		return
	}

	err := h.repo.ReplaceGroups(c.Request.Context(), id, groups)
	if errors.Is(err, pricing.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to replace option groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type UpdateProductReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	PromoPrice  *string `json:"promo_price"`
	PromoDays   *string `json:"promo_days"`
	IsAvailable *bool   `json:"is_available"`
	SortOrder   *int    `json:"sort_order"`
}

func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.UpdateProduct(c.Request.Context(), id, req.Name, req.Description, req.Price, req.PromoPrice, req.PromoDays, req.IsAvailable, req.SortOrder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Admin: quick toggle used by the kitchen when something runs out
func (h *Handler) AdminSetAvailability(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.repo.SetProductAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Admin: product details including disabled groups/items
func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	p, err := h.repo.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
