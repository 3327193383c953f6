package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoreSettings is a singleton row.
type StoreSettings struct {
	BannerText    string    `json:"banner_text"`
	BannerEnabled bool      `json:"banner_enabled"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Get(ctx context.Context) (StoreSettings, error) {
	var s StoreSettings
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(banner_text,''), banner_enabled, updated_at
		FROM store_settings WHERE id = 1
	`).Scan(&s.BannerText, &s.BannerEnabled, &s.UpdatedAt)
	return s, err
}

func (r *Repo) Update(ctx context.Context, bannerText string, bannerEnabled bool) (StoreSettings, error) {
	var s StoreSettings
	err := r.db.QueryRow(ctx, `
		INSERT INTO store_settings (id, banner_text, banner_enabled)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET banner_text = $1, banner_enabled = $2, updated_at = now()
		RETURNING COALESCE(banner_text,''), banner_enabled, updated_at
	`, bannerText, bannerEnabled).Scan(&s.BannerText, &s.BannerEnabled, &s.UpdatedAt)
	return s, err
}

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type UpdateReq struct {
	BannerText    string `json:"banner_text"`
	BannerEnabled bool   `json:"banner_enabled"`
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s, err := h.repo.Update(c.Request.Context(), req.BannerText, req.BannerEnabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
